package corner

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON_Nil(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestToJSON_CornerError(t *testing.T) {
	err := New(KindNotFound, "user not found")

	resp := ToJSON(err)
	require.NotNil(t, resp)
	require.Equal(t, "NotFound", resp.Kind)
	require.Equal(t, "user not found", resp.Message)
	require.Equal(t, decorationFor(KindNotFound).HelpfulMessage, resp.HelpfulMessage)
	require.Equal(t, decorationFor(KindNotFound).SupportLink, resp.SupportLink)
}

func TestToJSON_PlainError(t *testing.T) {
	resp := ToJSON(stderrors.New("plain failure"))

	require.Equal(t, string(KindUnknown), resp.Kind)
	require.Equal(t, "plain failure", resp.Message)
	require.NotEmpty(t, resp.HelpfulMessage)
	require.NotEmpty(t, resp.SupportLink)
}

func TestToJSON_ExcludesStackAndChain(t *testing.T) {
	cause := stderrors.New("secret internal detail")
	err := Wrap(cause, KindInternal, "operation failed")

	data, merr := json.Marshal(ToJSON(err))
	require.NoError(t, merr)
	require.NotContains(t, string(data), "secret internal detail")
	require.NotContains(t, string(data), ".go")
}

func TestMarshalJSON(t *testing.T) {
	err := New(KindExample, "demo failure")

	data, merr := json.Marshal(err)
	require.NoError(t, merr)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Example", decoded["kind"])
	require.Equal(t, "demo failure", decoded["message"])
	require.NotEmpty(t, decoded["helpful_message"])
	require.NotEmpty(t, decoded["support_link"])
}
