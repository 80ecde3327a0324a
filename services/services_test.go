package services

import (
	"context"
	"sync"

	"github.com/Govind-619/Plug233/models"
)

type fakeGateway struct {
	url   string
	err   error
	calls []string
}

func (g *fakeGateway) Initiate(_ context.Context, order *models.Order, email string) (string, error) {
	g.calls = append(g.calls, order.ID+"|"+email)
	if g.err != nil {
		return "", g.err
	}
	return g.url + "?order=" + order.ID, nil
}

type publishedEvent struct {
	Topic string
	Key   string
	Event interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(_ context.Context, topic, key string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{topic, key, event})
	return nil
}

func (p *fakePublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Topic
	}
	return out
}

type sentMail struct {
	To, Subject, Body string
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}
