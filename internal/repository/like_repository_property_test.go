package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wealist/discussion-board/internal/domain"
)

// For any sequence of toggles by a fixed pool of users, a user ends up
// liking the thread exactly when they toggled an odd number of times,
// and the stored counter equals the number of like rows.
func TestProperty_ToggleSequencePreservesCountInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("like_count equals surviving like rows after any toggle sequence", prop.ForAll(
		func(togglesByUser []int) bool {
			db := setupTestDB(t)
			repo := NewLikeRepository(db)
			ctx := context.Background()

			thread := createTestThread(t, db, uuid.New())

			expectedLikes := 0
			users := make([]uuid.UUID, len(togglesByUser))
			for i, toggles := range togglesByUser {
				users[i] = uuid.New()
				for n := 0; n < toggles; n++ {
					if _, _, err := repo.Toggle(ctx, thread.ID, users[i]); err != nil {
						return false
					}
				}
				if toggles%2 == 1 {
					expectedLikes++
				}
			}

			rows, err := repo.CountByThreadID(ctx, thread.ID)
			if err != nil || int(rows) != expectedLikes {
				return false
			}

			var stored domain.Thread
			if err := db.First(&stored, "id = ?", thread.ID).Error; err != nil {
				return false
			}
			if stored.LikeCount != expectedLikes {
				return false
			}

			// Per-user state matches toggle parity
			for i, toggles := range togglesByUser {
				exists, err := repo.Exists(ctx, thread.ID, users[i])
				if err != nil || exists != (toggles%2 == 1) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(4, gen.IntRange(0, 5)),
	))

	properties.TestingRun(t)
}
