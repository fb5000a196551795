package profile

import (
	"context"
	"net/http"
	"testing"

	"healthease-client/internal/app/models"
	"healthease-client/internal/app/services/shared/gateway/gatewaytest"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/requests"
	"healthease-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testUser() models.UserRecord {
	return models.UserRecord{
		UserID: "u1",
		Email:  "jane@example.com",
		Name:   "Jane",
		Profile: models.UserProfile{
			Allergies: []string{"penicillin"},
		},
	}
}

func strPtr(value string) *string {
	return &value
}

func TestProfileService(t *testing.T) {
	ctx := context.Background()

	t.Run("Get Decodes User Record", func(t *testing.T) {
		api := gatewaytest.NewFakeAPI(t)
		gw, _ := gatewaytest.NewGateway(t, api)
		api.JSON(constvars.MethodGet, constvars.EndpointProfile, http.StatusOK, `{"user_id":"u1","name":"Jane","email":"jane@example.com","picture":null,"profile":{"age":34,"blood_group":"O+","allergies":["penicillin"],"medical_history":[],"emergency_contacts":[]}}`)

		user, err := NewProfileService(gw, zap.NewNop()).Get(ctx)

		require.NoError(t, err)
		assert.Equal(t, "u1", user.UserID)
		require.NotNil(t, user.Profile.Age)
		assert.Equal(t, 34, *user.Profile.Age)
		assert.Nil(t, user.Picture)
	})

	t.Run("Update Validates Email", func(t *testing.T) {
		api := gatewaytest.NewFakeAPI(t)
		gw, _ := gatewaytest.NewGateway(t, api)

		err := NewProfileService(gw, zap.NewNop()).Update(ctx, &requests.UpdateProfile{Name: "Jane", Email: "not-an-email"})

		assert.True(t, exceptions.IsValidation(err))
		assert.Empty(t, api.Requests(constvars.MethodPut, constvars.EndpointProfile))
	})
}

func TestEditor(t *testing.T) {
	ctx := context.Background()

	t.Run("Apply Without Draft", func(t *testing.T) {
		editor := NewEditor(nil, zap.NewNop())

		err := editor.Apply(&requests.ProfileDraftPatch{Name: strPtr("X")})

		assert.Error(t, err)
	})

	t.Run("Draft Does Not Touch Source Record", func(t *testing.T) {
		editor := NewEditor(nil, zap.NewNop())
		user := testUser()
		editor.Begin(user)

		require.NoError(t, editor.Apply(&requests.ProfileDraftPatch{
			Name:      strPtr("Jane Doe"),
			Allergies: []string{"latex"},
		}))

		draft, ok := editor.Draft()
		require.True(t, ok)
		assert.Equal(t, "Jane Doe", draft.Name)
		assert.Equal(t, []string{"latex"}, draft.Profile.Allergies)
		assert.Equal(t, "Jane", user.Name)
		assert.Equal(t, []string{"penicillin"}, user.Profile.Allergies)
	})

	t.Run("Commit Sends Full Profile And Closes Draft", func(t *testing.T) {
		api := gatewaytest.NewFakeAPI(t)
		gw, _ := gatewaytest.NewGateway(t, api)
		api.JSON(constvars.MethodPut, constvars.EndpointProfile, http.StatusOK, `{"message":"Profile updated successfully"}`)
		editor := NewEditor(NewProfileService(gw, zap.NewNop()), zap.NewNop())
		editor.Begin(testUser())
		require.NoError(t, editor.Apply(&requests.ProfileDraftPatch{
			BloodGroup: strPtr("AB+"),
			EmergencyContacts: &[]models.EmergencyContact{
				{Name: "John", Phone: "+1-555-0100", Relationship: "spouse"},
			},
		}))

		saved, err := editor.Commit(ctx)

		require.NoError(t, err)
		require.NotNil(t, saved.Profile.BloodGroup)
		assert.Equal(t, "AB+", *saved.Profile.BloodGroup)
		_, open := editor.Draft()
		assert.False(t, open)

		recorded := api.Requests(constvars.MethodPut, constvars.EndpointProfile)
		require.Len(t, recorded, 1)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorded[0].Body, &body))
		assert.Equal(t, "Jane", body["name"])
		assert.Equal(t, "jane@example.com", body["email"])
		assert.Equal(t, "AB+", body["blood_group"])
		assert.Equal(t, []interface{}{}, body["medical_history"])
		assert.Len(t, body["emergency_contacts"], 1)
	})

	t.Run("Failed Commit Keeps Draft", func(t *testing.T) {
		api := gatewaytest.NewFakeAPI(t)
		gw, _ := gatewaytest.NewGateway(t, api)
		api.JSON(constvars.MethodPut, constvars.EndpointProfile, http.StatusInternalServerError, `{"detail":"database unavailable"}`)
		editor := NewEditor(NewProfileService(gw, zap.NewNop()), zap.NewNop())
		editor.Begin(testUser())

		_, err := editor.Commit(ctx)

		require.Error(t, err)
		_, open := editor.Draft()
		assert.True(t, open)
	})

	t.Run("Invalid Contact Fails Validation", func(t *testing.T) {
		api := gatewaytest.NewFakeAPI(t)
		gw, _ := gatewaytest.NewGateway(t, api)
		editor := NewEditor(NewProfileService(gw, zap.NewNop()), zap.NewNop())
		editor.Begin(testUser())
		require.NoError(t, editor.Apply(&requests.ProfileDraftPatch{
			EmergencyContacts: &[]models.EmergencyContact{{Name: "John"}},
		}))

		_, err := editor.Commit(ctx)

		assert.True(t, exceptions.IsValidation(err))
	})

	t.Run("Cancel Discards Draft", func(t *testing.T) {
		editor := NewEditor(nil, zap.NewNop())
		editor.Begin(testUser())

		editor.Cancel()

		_, err := editor.Commit(ctx)
		assert.Error(t, err)
	})
}
