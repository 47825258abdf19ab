package model

import (
	"github.com/stockr/stockr/internal/model1"
)

// Status tracks where a collection fetch stands.
type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "pending"
	}
}

// TableListener represents a table model listener.
type TableListener interface {
	// TableLoading notifies a fetch started with nothing to show yet.
	TableLoading()

	// TableNoData notifies listener no data was found.
	TableNoData(*model1.TableData)

	// TableDataChanged notifies the model data changed.
	TableDataChanged(*model1.TableData)

	// TableLoadFailed notifies the load failed.
	TableLoadFailed(error)
}
