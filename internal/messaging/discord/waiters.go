package discord

import "sync"

// waitKey identifies a pending free-text wait. One wait per user per channel;
// registering again supersedes the previous waiter.
type waitKey struct {
	userID    string
	channelID string
}

// registry holds the pending waits the gateway handlers deliver into. Text
// waits are keyed by (user, channel); choice waits by the component's custom
// ID, which is unique per prompt.
type registry struct {
	mu      sync.Mutex
	text    map[waitKey]chan string
	choices map[string]chan string
}

func newRegistry() *registry {
	return &registry{
		text:    make(map[waitKey]chan string),
		choices: make(map[string]chan string),
	}
}

// registerText creates a single-shot future for the user's next message in
// the channel. An existing waiter for the same key is dropped.
func (r *registry) registerText(userID, channelID string) chan string {
	ch := make(chan string, 1)
	key := waitKey{userID: userID, channelID: channelID}

	r.mu.Lock()
	r.text[key] = ch
	r.mu.Unlock()
	return ch
}

func (r *registry) unregisterText(userID, channelID string) {
	key := waitKey{userID: userID, channelID: channelID}
	r.mu.Lock()
	delete(r.text, key)
	r.mu.Unlock()
}

// deliverText resolves a pending text wait, reporting whether one existed
func (r *registry) deliverText(userID, channelID, content string) bool {
	key := waitKey{userID: userID, channelID: channelID}

	r.mu.Lock()
	ch, ok := r.text[key]
	if ok {
		delete(r.text, key)
	}
	r.mu.Unlock()

	if ok {
		ch <- content
	}
	return ok
}

func (r *registry) registerChoice(customID string) chan string {
	ch := make(chan string, 1)
	r.mu.Lock()
	r.choices[customID] = ch
	r.mu.Unlock()
	return ch
}

func (r *registry) unregisterChoice(customID string) {
	r.mu.Lock()
	delete(r.choices, customID)
	r.mu.Unlock()
}

func (r *registry) deliverChoice(customID, value string) bool {
	r.mu.Lock()
	ch, ok := r.choices[customID]
	if ok {
		delete(r.choices, customID)
	}
	r.mu.Unlock()

	if ok {
		ch <- value
	}
	return ok
}
