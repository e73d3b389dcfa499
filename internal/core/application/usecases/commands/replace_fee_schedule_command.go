package commands

import (
	"errors"

	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/guard"
)

var ErrReplaceFeeScheduleCommandIsNotConstructed = errors.New(
	"ReplaceFeeScheduleCommand must be created via NewReplaceFeeScheduleCommand constructor",
)

// ReplaceFeeScheduleCommand represents a request to install a new delivery
// fee schedule. The schedule is replaced as a whole; orders priced under the
// previous schedule keep their snapshot totals.
type ReplaceFeeScheduleCommand struct { //nolint:recvcheck //using for validation
	schedule *pricing.Schedule

	guard guard.ConstructorGuard
}

// NewReplaceFeeScheduleCommand creates a command to replace the fee schedule.
// The schedule must be a constructed pricing.Schedule; tier ordering and
// amounts were already validated by its own constructor.
func NewReplaceFeeScheduleCommand(schedule *pricing.Schedule) (ReplaceFeeScheduleCommand, error) {
	scheduleCommand := ReplaceFeeScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := scheduleCommand.setSchedule(schedule); err != nil {
		return ReplaceFeeScheduleCommand{}, err
	}

	return scheduleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceFeeScheduleCommand) Validate() error {
	return c.guard.Validate(ErrReplaceFeeScheduleCommandIsNotConstructed)
}

// Schedule returns the schedule to install.
func (c ReplaceFeeScheduleCommand) Schedule() *pricing.Schedule {
	return c.schedule
}

func (c *ReplaceFeeScheduleCommand) setSchedule(schedule *pricing.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	c.schedule = schedule
	return nil
}
