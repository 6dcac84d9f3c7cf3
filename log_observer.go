package lazy

import "github.com/apex/log"

type logObserver struct {
	logger log.Interface
}

// NewLogObserver returns an Observer that writes each event to logger at
// debug level, with class, attr and kind fields.
func NewLogObserver(logger log.Interface) Observer {
	return logObserver{logger: logger}
}

func (o logObserver) On(e EventData) {
	o.logger.WithFields(log.Fields{
		"class": e.Class,
		"attr":  e.Name,
		"kind":  e.Kind,
	}).Debug(e.Event.String())
}
