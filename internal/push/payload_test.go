package push

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBroadcastDefaults(t *testing.T) {
	n := NewBroadcast("", "")

	assert.Equal(t, DefaultTitle, n.Title)
	assert.Equal(t, DefaultBody, n.Body)
	assert.Equal(t, "/icon.svg", n.Icon)
	assert.Equal(t, "/icon.svg", n.Badge)
	assert.Equal(t, []int{200, 100, 200}, n.Vibrate)
	assert.Equal(t, TagBroadcast, n.Tag)
}

func TestNewBroadcastKeepsCustomText(t *testing.T) {
	n := NewBroadcast("Rodada 3", "Resultados atualizados")

	assert.Equal(t, "Rodada 3", n.Title)
	assert.Equal(t, "Resultados atualizados", n.Body)
	assert.Equal(t, TagBroadcast, n.Tag)
}

func TestNewTest(t *testing.T) {
	n := NewTest("", "Notificação de teste")

	assert.Equal(t, DefaultTitle, n.Title)
	assert.Equal(t, "Notificação de teste", n.Body)
	assert.Equal(t, TagTest, n.Tag)
	assert.Nil(t, n.Vibrate)
}

func TestDisplayNotificationWireFormat(t *testing.T) {
	payload, err := json.Marshal(NewTest("", "oi"))
	require.NoError(t, err)

	// No vibration pattern on test sends; the field must stay off the wire.
	assert.NotContains(t, string(payload), "vibrate")
	assert.Contains(t, string(payload), `"tag":"super-copa-test"`)
}
