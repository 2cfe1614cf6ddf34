package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStruct_TrimsAndEscapes(t *testing.T) {
	req := AdjustRequest{
		DeltaCents: 500,
		Note:       "  goodwill credit <script>alert('x')</script>  ",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Note, "&lt;script&gt;")
	assert.NotContains(t, req.Note, "<script>")
	assert.False(t, req.Note[0] == ' ', "leading whitespace trimmed")
	assert.Equal(t, int64(500), req.DeltaCents)
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	type withPtr struct {
		Name  string
		Label *string
		Empty *string
	}
	label := "  ops team  "
	v := withPtr{Name: " alice ", Label: &label}
	SanitizeStruct(&v)

	assert.Equal(t, "alice", v.Name)
	assert.Equal(t, "ops team", *v.Label)
	assert.Nil(t, v.Empty)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	req := SpendRequest{Reference: " ref "}
	SanitizeStruct(req)
	assert.Equal(t, " ref ", req.Reference)
}

func TestSafeID(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"order-001", true},
		{"REF_002", true},
		{"cs_test_a1.b2", true},
		{"inv:2024:17", true},
		{"ref 001", false},
		{"ref<001>", false},
		{"ref;DROP", false},
		{"", false},
		{"ref\n001", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.valid, referenceRe.MatchString(tt.in))
		})
	}
}

func TestBindError_ReportsJSONFieldNames(t *testing.T) {
	req := SpendRequest{AmountCents: 0, Reason: "gift", Reference: "bad ref"}
	err := binding.Validator.ValidateStruct(&req)
	require.Error(t, err)

	appErr := BindError(err)
	assert.Equal(t, "VAL_001", appErr.Code)
	fields, ok := appErr.Details["fields"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", fields["amount_cents"])
	assert.Equal(t, "must be one of: purchase withdrawal commission", fields["reason"])
	assert.Equal(t, "may only contain letters, digits and _-.:", fields["reference"])
}

func TestBindError_MalformedJSON(t *testing.T) {
	var req SpendRequest
	err := binding.JSON.BindBody([]byte(`{"amount_cents":`), &req)
	assert.Equal(t, "request body must be valid JSON", BindError(err).Message)
}

func TestBindError_WrongType(t *testing.T) {
	var req SpendRequest
	err := binding.JSON.BindBody([]byte(`{"amount_cents":"ten"}`), &req)
	assert.Equal(t, "amount_cents must be a int64", BindError(err).Message)
}
