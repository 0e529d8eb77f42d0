package dashboard

import "time"

func (handler *Handler) SetNow(now func() time.Time) {
	handler.now = now
}
