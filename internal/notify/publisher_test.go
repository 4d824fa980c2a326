package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/sahigaadi/internal/models"
)

// fakeToken is a completed mqtt.Token.
type fakeToken struct {
	err      error
	timedOut bool
}

func (t *fakeToken) Wait() bool                     { return !t.timedOut }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.timedOut }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

// MockClient is a mock implementation of mqtt.Client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) IsConnected() bool      { return true }
func (m *MockClient) IsConnectionOpen() bool { return true }
func (m *MockClient) Connect() mqtt.Token    { return &fakeToken{} }
func (m *MockClient) Disconnect(quiesce uint) {
	m.Called(quiesce)
}
func (m *MockClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	args := m.Called(topic, qos, retained, payload)
	return args.Get(0).(mqtt.Token)
}
func (m *MockClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	return &fakeToken{}
}
func (m *MockClient) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	return &fakeToken{}
}
func (m *MockClient) Unsubscribe(topics ...string) mqtt.Token {
	return &fakeToken{}
}
func (m *MockClient) AddRoute(topic string, callback mqtt.MessageHandler) {}
func (m *MockClient) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.ClientOptionsReader{}
}

func testConsultation() models.Consultation {
	return models.Consultation{
		ID:            "lead-1",
		Name:          "Asha",
		Phone:         "9876543210",
		PreferredTime: models.TimeEvening,
		Type:          models.ConsultationRecommendation,
		Status:        models.StatusPending,
		CreatedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestMQTTPublisher_PublishConsultation(t *testing.T) {
	client := new(MockClient)
	publisher := newMQTTPublisher(client, "lko")
	assert.Equal(t, "lko/consultations", publisher.Topic())

	var payload []byte
	client.On("Publish", "lko/consultations", byte(1), false, mock.Anything).
		Run(func(args mock.Arguments) { payload = args.Get(3).([]byte) }).
		Return(&fakeToken{})

	err := publisher.PublishConsultation(context.Background(), testConsultation())
	require.NoError(t, err)
	client.AssertExpectations(t)

	var event ConsultationEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, EventConsultationBooked, event.Event)
	assert.Equal(t, "lead-1", event.Consultation.ID)
	assert.Equal(t, 499, event.PriceINR)
	assert.Equal(t, 45, event.Minutes)
}

func TestMQTTPublisher_DefaultPrefix(t *testing.T) {
	publisher := newMQTTPublisher(new(MockClient), "")
	assert.Equal(t, "sahigaadi/consultations", publisher.Topic())
}

func TestMQTTPublisher_Errors(t *testing.T) {
	t.Run("broker error", func(t *testing.T) {
		client := new(MockClient)
		client.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&fakeToken{err: errors.New("not connected")})

		err := newMQTTPublisher(client, "lko").PublishConsultation(context.Background(), testConsultation())
		assert.ErrorContains(t, err, "not connected")
	})

	t.Run("timeout", func(t *testing.T) {
		client := new(MockClient)
		client.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&fakeToken{timedOut: true})

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		err := newMQTTPublisher(client, "lko").PublishConsultation(ctx, testConsultation())
		assert.ErrorContains(t, err, "timed out")
	})
}

func TestMQTTPublisher_Close(t *testing.T) {
	client := new(MockClient)
	client.On("Disconnect", uint(250)).Return()
	newMQTTPublisher(client, "lko").Close()
	client.AssertExpectations(t)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.PublishConsultation(context.Background(), testConsultation()))
}

func TestNewMQTTPublisher_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping broker dial in short mode")
	}
	_, err := NewMQTTPublisher("tcp://127.0.0.1:1", "test", "lko")
	assert.Error(t, err)
}
