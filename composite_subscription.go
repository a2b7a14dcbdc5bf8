package urx

import "sync"

// CompositeSubscription cancels a group of subscriptions together. It is safe
// for concurrent use.
type CompositeSubscription struct {
	mutex sync.Mutex
	hooks
}

// Add puts subscription in the group. If the group was already unsubscribed,
// subscription is unsubscribed immediately.
func (sub *CompositeSubscription) Add(subscription Subscription) {
	if subscription == nil {
		return
	}
	sub.mutex.Lock()
	if sub.finished {
		sub.mutex.Unlock()
		subscription.Unsubscribe()
		return
	}
	sub.hooks.Add(subscription.Unsubscribe)
	sub.mutex.Unlock()
}

func (sub *CompositeSubscription) IsSubscribed() bool {
	sub.mutex.Lock()
	defer sub.mutex.Unlock()
	return !sub.finished
}

// Unsubscribe cancels every member in the order they were added. Members are
// unsubscribed outside the lock so they may call back into the group.
func (sub *CompositeSubscription) Unsubscribe() {
	sub.mutex.Lock()
	pending := sub.take()
	sub.mutex.Unlock()
	for _, unsubscribe := range pending {
		unsubscribe()
	}
}
