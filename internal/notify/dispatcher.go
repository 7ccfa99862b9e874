package notify

import "log"

// Dispatcher sends mail from a worker goroutine so a slow or failing
// SMTP server can never block or fail the request that queued the
// message. The queue drops on overflow instead of applying backpressure.
type Dispatcher struct {
	mailer Mailer
	queue  chan Message
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.mailer.Send(msg); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		log.Println("notify queue full, dropping message")
	}
}
