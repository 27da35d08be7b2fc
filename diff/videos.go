package diff

import "github.com/CrestNiraj12/terminalreels/domain"

func videoID(v domain.Video) string { return v.ID }

// Videos computes the edit script between two video sequences, matching by id
// and comparing content structurally.
func Videos(old, next []domain.Video) Script[domain.Video] {
	return Compute(old, next, videoID, domain.Video.Equal)
}

// LikeOnly reports whether b differs from a at most in its like flag and count.
// Such changes can take the Patch path.
func LikeOnly(a, b domain.Video) bool {
	if a.ID != b.ID {
		return false
	}
	a.IsLiked, a.LikeCount = b.IsLiked, b.LikeCount
	return a.Equal(b)
}
