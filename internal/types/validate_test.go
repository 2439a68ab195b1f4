package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalInfo_Validate_Valid(t *testing.T) {
	info := PersonalInfo{
		FirstName: "Jane",
		Email:     "jane@example.com",
		LinkedIn:  "https://linkedin.com/in/jane",
		Website:   "https://jane.dev",
	}

	assert.Empty(t, info.Validate())
}

func TestPersonalInfo_Validate_EmptyFieldsAllowed(t *testing.T) {
	assert.Empty(t, PersonalInfo{}.Validate())
}

func TestPersonalInfo_Validate_BadEmail(t *testing.T) {
	issues := PersonalInfo{Email: "not-an-email"}.Validate()

	require.Len(t, issues, 1)
	assert.Equal(t, "email", issues[0].Field)
	assert.Contains(t, issues[0].Message, "valid email")
}

func TestPersonalInfo_Validate_BadURLs(t *testing.T) {
	issues := PersonalInfo{GitHub: "github dot com", Website: "::"}.Validate()

	require.Len(t, issues, 2)
	fields := []string{issues[0].Field, issues[1].Field}
	assert.ElementsMatch(t, []string{"github", "website"}, fields)
	assert.Equal(t, "github: Please enter a valid URL", issues[0].String())
}
