package application

import (
	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
)

// drainEvents is the post-persist step that reads and clears the events
// accumulated on an aggregate. There is no event bus in the core; drained
// events are recorded to the log and are dispatch-ready for an outer layer.
func drainEvents(logger *logrus.Logger, user *entity.User) {
	if logger == nil {
		user.ClearDomainEvents()
		return
	}
	for _, ev := range user.PullDomainEvents() {
		logger.WithFields(logrus.Fields{
			"event":        ev.EventName(),
			"aggregate_id": ev.AggregateID(),
		}).Debug("domain event recorded")
	}
}
