package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePaging(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		size     string
		wantPage int
		wantSize int
		wantErr  bool
	}{
		{name: "defaults when absent", page: "", size: "", wantPage: 0, wantSize: 10},
		{name: "explicit values", page: "3", size: "25", wantPage: 3, wantSize: 25},
		{name: "page zero is valid", page: "0", size: "1", wantPage: 0, wantSize: 1},
		{name: "negative page", page: "-1", size: "", wantErr: true},
		{name: "zero size", page: "", size: "0", wantErr: true},
		{name: "non-numeric page", page: "abc", size: "", wantErr: true},
		{name: "non-numeric size", page: "", size: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size, err := ValidatePaging(tt.page, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestIsUUID(t *testing.T) {
	id := uuid.New()

	ok, parsed := IsUUID(id.String())
	assert.True(t, ok)
	assert.Equal(t, id, parsed)

	ok, _ = IsUUID("not-a-uuid")
	assert.False(t, ok)
}
