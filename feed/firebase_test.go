package feed

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsOptions(t *testing.T) {
	opts, source, err := Credentials{}.options()
	assert.Nil(t, err)
	assert.Empty(t, opts)
	assert.Equal(t, "default", source)

	opts, source, err = Credentials{File: "/etc/firebase.json"}.options()
	assert.Nil(t, err)
	assert.Len(t, opts, 1)
	assert.Equal(t, "file", source)

	encoded := base64.StdEncoding.EncodeToString([]byte(`{"type": "service_account"}`))
	opts, source, err = Credentials{Base64: encoded, File: "/etc/firebase.json"}.options()
	assert.Nil(t, err)
	assert.Len(t, opts, 1)
	assert.Equal(t, "base64", source)

	_, _, err = Credentials{Base64: "%%%"}.options()
	assert.Error(t, err)
}
