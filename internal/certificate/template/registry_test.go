package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p2ppsr/myac/config"
	appErrors "github.com/p2ppsr/myac/pkg/errors"
)

const myac1TypeID = "jVNgF8+rifnz00856b4TkThCAvfiUE4p+t/aHYl1u0c="

func TestRegistry_ExpectedFields(t *testing.T) {
	registry, err := New([]config.CertificateTypeConfig{
		{TypeID: myac1TypeID, Fields: []string{"domain", "identity", "when", "stake"}},
	})
	require.NoError(t, err)

	fields, err := registry.ExpectedFields(myac1TypeID)
	require.NoError(t, err)
	assert.Equal(t, []string{"domain", "identity", "when", "stake"}, fields)

	_, err = registry.ExpectedFields("bm90IGEgcmVnaXN0ZXJlZCB0eXBlIGlkZW50aWZpZXIhISE=")
	assert.ErrorIs(t, err, appErrors.ErrUnknownType)
}

func TestRegistry_All_PreservesOrder(t *testing.T) {
	second := "VhQ3UUGl4L76T9v3M2YLd/Es25CEwAAoGTowblLtM3s="

	registry, err := New([]config.CertificateTypeConfig{
		{TypeID: myac1TypeID, Fields: []string{"domain"}},
		{TypeID: second, Fields: []string{"name", "email"}},
	})
	require.NoError(t, err)

	all := registry.All()
	require.Len(t, all, 2)
	assert.Equal(t, myac1TypeID, all[0].TypeID)
	assert.Equal(t, second, all[1].TypeID)
	assert.Equal(t, []string{"name", "email"}, all[1].Fields)
}

func TestRegistry_New_Invalid(t *testing.T) {
	cases := []struct {
		name string
		cfgs []config.CertificateTypeConfig
	}{
		{"no types", nil},
		{"bad base64 id", []config.CertificateTypeConfig{
			{TypeID: "not-base64!!!", Fields: []string{"a"}},
		}},
		{"wrong id length", []config.CertificateTypeConfig{
			{TypeID: "c2hvcnQ=", Fields: []string{"a"}},
		}},
		{"no fields", []config.CertificateTypeConfig{
			{TypeID: myac1TypeID, Fields: nil},
		}},
		{"duplicate field", []config.CertificateTypeConfig{
			{TypeID: myac1TypeID, Fields: []string{"a", "a"}},
		}},
		{"empty field name", []config.CertificateTypeConfig{
			{TypeID: myac1TypeID, Fields: []string{""}},
		}},
		{"duplicate type id", []config.CertificateTypeConfig{
			{TypeID: myac1TypeID, Fields: []string{"a"}},
			{TypeID: myac1TypeID, Fields: []string{"b"}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfgs)
			assert.Error(t, err)
		})
	}
}
