package cocktails

import (
	"testing"

	"tabu/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanModify(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{"owner", &models.User{ID: owner, Role: models.RoleUser}, true},
		{"other user", &models.User{ID: other, Role: models.RoleUser}, false},
		{"other bartender", &models.User{ID: other, Role: models.RoleBartender}, false},
		{"admin override", &models.User{ID: other, Role: models.RoleAdmin}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canModify(owner, tt.user); got != tt.want {
				t.Errorf("canModify() = %v, want %v", got, tt.want)
			}
		})
	}
}
