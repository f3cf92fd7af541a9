package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/taskmates/taskmates-be/internal/models"
)

func assertRole(t *testing.T, app *fiber.App, id uint, want models.Role) {
	t.Helper()

	_, body := doJSON(t, app, "GET", "/api/users/"+itoa(id), nil)
	if role, _ := body["role"].(string); models.Role(role) != want {
		t.Fatalf("role = %q, want %q", role, want)
	}
}

func TestRoleTransitions(t *testing.T) {
	app, db := newTestApp(t)
	u := seedUser(t, db, "alice", "alice@x.com")

	status, body := doJSON(t, app, "POST", "/api/requesters", map[string]any{"user_id": u.ID})
	if status != 201 || body["message"] != "Requester role successfully added to user." {
		t.Fatalf("add requester: status = %d, message = %q", status, body["message"])
	}
	assertRole(t, app, u.ID, models.RoleRequester)

	status, body = doJSON(t, app, "POST", "/api/task-seekers", map[string]any{"user_id": u.ID})
	if status != 201 || body["message"] != "Task seeker role successfully added to user." {
		t.Fatalf("add seeker: status = %d, message = %q", status, body["message"])
	}
	assertRole(t, app, u.ID, models.RoleBoth)

	var requester models.Requester
	if err := db.Where("user_id = ?", u.ID).First(&requester).Error; err != nil {
		t.Fatal(err)
	}
	status, body = doJSON(t, app, "DELETE", "/api/requesters/"+itoa(requester.ID), nil)
	if status != 200 || body["message"] != "Removed requester role successfully." {
		t.Fatalf("delete requester: status = %d, message = %q", status, body["message"])
	}
	assertRole(t, app, u.ID, models.RoleTaskSeeker)

	var seeker models.TaskSeeker
	if err := db.Where("user_id = ?", u.ID).First(&seeker).Error; err != nil {
		t.Fatal(err)
	}
	status, body = doJSON(t, app, "DELETE", "/api/task-seekers/"+itoa(seeker.ID), nil)
	if status != 200 || body["message"] != "Removed seeker role successfully." {
		t.Fatalf("delete seeker: status = %d, message = %q", status, body["message"])
	}
	assertRole(t, app, u.ID, models.RoleNone)
}

func TestAddRequesterTwice(t *testing.T) {
	app, db := newTestApp(t)
	u := seedUser(t, db, "alice", "alice@x.com")

	doJSON(t, app, "POST", "/api/requesters", map[string]any{"user_id": u.ID})
	status, body := doJSON(t, app, "POST", "/api/requesters", map[string]any{"user_id": u.ID})
	if status != 400 || body["error"] != "User already has requester role." {
		t.Fatalf("status = %d, error = %q", status, body["error"])
	}
	if n := countRows(t, db, &models.Requester{}); n != 1 {
		t.Fatalf("requester rows = %d, want 1", n)
	}
}

func TestAddRequesterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/requesters", map[string]any{})
	if status != 400 || body["error"] != "Missing user id." {
		t.Fatalf("status = %d, error = %q", status, body["error"])
	}

	status, body = doJSON(t, app, "POST", "/api/requesters", map[string]any{"user_id": 999})
	if status != 404 || body["error"] != "User not found." {
		t.Fatalf("status = %d, error = %q", status, body["error"])
	}
}

func TestUpdateRequesterStatsAppliesZero(t *testing.T) {
	app, db := newTestApp(t)
	u := seedUser(t, db, "alice", "alice@x.com")
	r := seedRequester(t, db, u)
	r.TotalReviews = 5
	r.OverallRating = 4.5
	if err := db.Save(r).Error; err != nil {
		t.Fatal(err)
	}

	status, body := doJSON(t, app, "PUT", "/api/requesters/"+itoa(r.ID), map[string]any{
		"total_reviews": 0,
	})
	if status != 200 || body["message"] != "Requester info edited successfully." {
		t.Fatalf("status = %d, message = %q", status, body["message"])
	}

	var got models.Requester
	if err := db.First(&got, r.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.TotalReviews != 0 {
		t.Fatalf("total_reviews = %d, want 0", got.TotalReviews)
	}
	if got.OverallRating != 4.5 {
		t.Fatalf("absent field changed: overall_rating = %v", got.OverallRating)
	}
}

func TestGetRequesterByUserID(t *testing.T) {
	app, db := newTestApp(t)
	u := seedUser(t, db, "alice", "alice@x.com")
	r := seedRequester(t, db, u)

	status, body := doJSON(t, app, "GET", "/api/requesters/user_id/"+itoa(u.ID), nil)
	if status != 200 {
		t.Fatalf("status = %d, want 200", status)
	}
	if uint(body["id"].(float64)) != r.ID {
		t.Fatalf("id = %v, want %d", body["id"], r.ID)
	}

	status, body = doJSON(t, app, "GET", "/api/requesters/user_id/999", nil)
	if status != 404 || body["error"] != "Requester not found." {
		t.Fatalf("status = %d, error = %q", status, body["error"])
	}
}

func TestUpdateSeekerStats(t *testing.T) {
	app, db := newTestApp(t)
	u := seedUser(t, db, "bob", "bob@x.com")
	s := seedSeeker(t, db, u)

	status, body := doJSON(t, app, "PUT", "/api/task-seekers/"+itoa(s.ID), map[string]any{
		"overall_rating": 3.5,
		"total_reviews":  2,
	})
	if status != 200 || body["message"] != "Seeker info edited successfully." {
		t.Fatalf("status = %d, message = %q", status, body["message"])
	}

	var got models.TaskSeeker
	if err := db.First(&got, s.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.OverallRating != 3.5 || got.TotalReviews != 2 {
		t.Fatalf("got rating %v reviews %d", got.OverallRating, got.TotalReviews)
	}
}
