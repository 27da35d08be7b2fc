package mock

import (
	"time"

	"github.com/CrestNiraj12/terminalreels/domain"
)

func fixtureUsers() []domain.User {
	return []domain.User{
		{ID: "1", Username: "Kang", AvatarURL: "avatar1", FollowersCount: 12500},
		{ID: "2", Username: "Qiao", AvatarURL: "avatar2", FollowersCount: 8900},
		{ID: "3", Username: "SeptemberWish", AvatarURL: "avatar3", FollowersCount: 25600},
		{ID: "4", Username: "Nehs", AvatarURL: "avatar4", FollowersCount: 18200},
		{ID: "5", Username: "heiheiyouyou", AvatarURL: "avatar5", FollowersCount: 9800},
		{ID: "6", Username: "FacingTheSun", AvatarURL: "avatar5", FollowersCount: 9800},
	}
}

func (c *Catalog) videos() []domain.Video {
	now := c.now()
	users := fixtureUsers()
	return []domain.Video{
		{
			ID:           "video_1",
			Title:        "Workout diary",
			Description:  "Hit today's exercise goal and met the fluffiest little puppy on the way.",
			VideoURL:     "demo4",
			CoverURL:     "video7",
			Author:       users[0],
			PlayCount:    15600,
			LikeCount:    1200,
			CommentCount: 89,
			ShareCount:   156,
			Duration:     45,
			CreatedAt:    now.Add(-1 * time.Hour),
		},
		{
			ID:           "video_2",
			Title:        "Everyday life",
			Description:  "ovo is a smile, o_o is a warning!",
			VideoURL:     "video2",
			CoverURL:     "video2",
			Author:       users[1],
			PlayCount:    28900,
			LikeCount:    2100,
			CommentCount: 234,
			ShareCount:   567,
			Duration:     32,
			CreatedAt:    now.Add(-2 * time.Hour),
			IsLiked:      true,
		},
		{
			ID:           "video_3",
			Title:        "Travel",
			Description:  "Soaking up the scenery!",
			VideoURL:     "video3",
			CoverURL:     "video3",
			Author:       users[2],
			PlayCount:    45200,
			LikeCount:    3400,
			CommentCount: 567,
			ShareCount:   890,
			Duration:     28,
			CreatedAt:    now.Add(-3 * time.Hour),
		},
		{
			ID:           "video_4",
			Title:        "Landmarks",
			Description:  "Standing where history was made.",
			VideoURL:     "video4",
			CoverURL:     "video4",
			Author:       users[3],
			PlayCount:    32100,
			LikeCount:    2800,
			CommentCount: 445,
			ShareCount:   723,
			Duration:     38,
			CreatedAt:    now.Add(-4 * time.Hour),
			IsLiked:      true,
		},
		{
			ID:           "video_5",
			Title:        "5-minute abs, results in a month",
			Description:  "Five minutes a day for a month and the abs show up!",
			VideoURL:     "video5",
			CoverURL:     "video5",
			Author:       users[4],
			PlayCount:    19800,
			LikeCount:    1500,
			CommentCount: 234,
			ShareCount:   345,
			Duration:     42,
			CreatedAt:    now.Add(-5 * time.Hour),
		},
		{
			ID:    "video_6",
			Title: "Performance monitoring SDK",
			Description: "A mobile news client that makes browsing and managing content easy.\n\n" +
				"Built on an MVVM architecture for a smooth experience and rich content display.",
			VideoURL:     "demo2",
			CoverURL:     "video6",
			Author:       users[5],
			PlayCount:    8900,
			LikeCount:    678,
			CommentCount: 89,
			ShareCount:   123,
			Duration:     55,
			CreatedAt:    now.Add(-6 * time.Hour),
		},
	}
}
