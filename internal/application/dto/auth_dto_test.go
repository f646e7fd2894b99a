package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/schlosser-auth/internal/application/dto"
)

func TestParseLoginRequest_Alias(t *testing.T) {
	cases := []struct {
		body          string
		login, passwd string
	}{
		{`{"login":"ana1","password":"1234"}`, "ana1", "1234"},
		{`{"usuario":"Ana","senha":"1234"}`, "Ana", "1234"},
		{`{"user":"ana1","pass":"x"}`, "ana1", "x"},
		{`{"phone":5511912345678,"password":1234}`, "5511912345678", "1234"},
		{`{"login":"  ","usuario":"ana1","password":"p"}`, "ana1", "p"},
		{`{"login":null,"user":" bia ","senha":" s "}`, "bia", "s"},
	}
	for _, tc := range cases {
		in := dto.ParseLoginRequest([]byte(tc.body))
		assert.Equal(t, tc.login, in.Login, tc.body)
		assert.Equal(t, tc.passwd, in.Password, tc.body)
	}
}

func TestParseLoginRequest_CuerpoInvalido(t *testing.T) {
	for _, body := range []string{"", "no es json", "[1,2]", `{"login":{"x":1}}`} {
		in := dto.ParseLoginRequest([]byte(body))
		assert.Empty(t, in.Login, body)
		assert.Empty(t, in.Password, body)
	}
}
