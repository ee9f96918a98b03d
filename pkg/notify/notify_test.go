package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

var sample = Message{
	DeviceToken: "device-1",
	Title:       "Mise à jour de votre signalement",
	Body:        "corps",
	Data:        map[string]string{"type": "status_update"},
}

type fakeFCM struct{ got *messaging.Message }

func (f *fakeFCM) Send(_ context.Context, m *messaging.Message) (string, error) {
	f.got = m
	return "projects/x/messages/1", nil
}

func TestFCMBuildsMessage(t *testing.T) {
	t.Parallel()
	fake := &fakeFCM{}

	require.NoError(t, (&FCM{client: fake}).Send(t.Context(), sample))
	require.Equal(t, "device-1", fake.got.Token)
	require.Equal(t, sample.Title, fake.got.Notification.Title)
	require.Equal(t, "status_update", fake.got.Data["type"])

	android := fake.got.Android
	require.NotNil(t, android)
	require.Equal(t, "high", android.Priority)
	require.Equal(t, "default", android.Notification.Sound)
	require.Equal(t, "#3B82F6", android.Notification.Color)
	require.Equal(t, "status_updates", android.Notification.ChannelID)
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func TestKafkaPublishesEvent(t *testing.T) {
	t.Parallel()
	w := &fakeWriter{}
	k := &Kafka{writer: w, topic: "roadwatch.notifications"}

	require.NoError(t, k.Send(t.Context(), sample))
	require.Len(t, w.msgs, 1)
	require.Equal(t, "roadwatch.notifications", w.msgs[0].Topic)
	require.Equal(t, []byte("device-1"), w.msgs[0].Key)

	var ev map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	require.Equal(t, "push_notification", ev["type"])
	require.Equal(t, "device-1", ev["device_token"])
}

func TestNewKafkaValidates(t *testing.T) {
	t.Parallel()
	_, err := NewKafka(nil, "topic")
	require.Error(t, err)
	_, err = NewKafka([]string{"localhost:9092"}, "")
	require.Error(t, err)
}

type failing struct{ err error }

func (f failing) Send(context.Context, Message) error { return f.err }

func TestFanoutJoinsErrors(t *testing.T) {
	t.Parallel()
	a, b := errors.New("a"), errors.New("b")
	w := &fakeWriter{}

	err := Fanout{failing{a}, &Kafka{writer: w, topic: "t"}, failing{b}}.Send(t.Context(), sample)
	require.ErrorIs(t, err, a)
	require.ErrorIs(t, err, b)
	require.Len(t, w.msgs, 1)

	require.NoError(t, Fanout{Log{}}.Send(t.Context(), sample))
}
