package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCRUD(t *testing.T) {
	r, _ := setupServer(t)
	token := signup(t, r, "asha")
	saveProfile(t, r, token, "Pune")

	// Create.
	w := doJSON(r, http.MethodPost, "/api/photographer/team/", token, gin.H{
		"name": "Mina",
		"role": "Second shooter",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	memberID := uint(decode(t, w)["id"].(float64))

	// List.
	w = doJSON(r, http.MethodGet, "/api/photographer/team/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	team := decodeList(t, w)
	require.Len(t, team, 1)
	assert.Equal(t, "Mina", team[0]["name"])

	// Partial update: only the role changes.
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/photographer/team/%d/", memberID), token, gin.H{
		"role": "Editor",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Mina", body["name"])
	assert.Equal(t, "Editor", body["role"])

	// Delete.
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/photographer/team/%d/", memberID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/api/photographer/team/", token, nil)
	assert.Len(t, decodeList(t, w), 0)
}

func TestTeamCreateWithoutProfile(t *testing.T) {
	r, _ := setupServer(t)
	token := signup(t, r, "asha")

	w := doJSON(r, http.MethodPost, "/api/photographer/team/", token, gin.H{
		"name": "Mina",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "profile_not_found", decode(t, w)["error_code"])
}

func TestTeamListWithoutProfileIsEmpty(t *testing.T) {
	r, _ := setupServer(t)
	token := signup(t, r, "asha")

	w := doJSON(r, http.MethodGet, "/api/photographer/team/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 0)
}

// Another photographer touching a foreign row gets the same 404 as a
// missing row, never a 403.
func TestTeamOwnershipHidesForeignRows(t *testing.T) {
	r, _ := setupServer(t)

	ownerToken := signup(t, r, "asha")
	saveProfile(t, r, ownerToken, "Pune")

	w := doJSON(r, http.MethodPost, "/api/photographer/team/", ownerToken, gin.H{
		"name": "Mina",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	memberID := uint(decode(t, w)["id"].(float64))

	otherToken := signup(t, r, "zoya")
	saveProfile(t, r, otherToken, "Delhi")

	path := fmt.Sprintf("/api/photographer/team/%d/", memberID)

	w = doJSON(r, http.MethodPut, path, otherToken, gin.H{"role": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decode(t, w)["error_code"])

	w = doJSON(r, http.MethodDelete, path, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Still intact for the owner.
	w = doJSON(r, http.MethodGet, "/api/photographer/team/", ownerToken, nil)
	team := decodeList(t, w)
	require.Len(t, team, 1)
	assert.Equal(t, "Mina", team[0]["name"])
}
