package model

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/stockr/stockr/internal/dao"
	"github.com/stockr/stockr/internal/model1"
	"github.com/stockr/stockr/internal/render"
)

// Query fetches a collection through a DAO and renders it into rows.
type Query struct {
	rid         *dao.ResourceID
	factory     dao.Factory
	accessor    dao.Accessor
	renderer    model1.Renderer
	data        *model1.TableData
	status      Status
	err         error
	refreshRate time.Duration
	listeners   []TableListener
	cancelFn    context.CancelFunc
	mx          sync.RWMutex
}

// NewQuery creates a new collection query. A zero refresh rate disables polling.
func NewQuery(rid *dao.ResourceID, factory dao.Factory, refreshRate time.Duration) *Query {
	return &Query{
		rid:         rid,
		factory:     factory,
		refreshRate: refreshRate,
		listeners:   make([]TableListener, 0, 2),
	}
}

// Init resolves the accessor and renderer for the query's resource.
func (q *Query) Init() error {
	acc, err := dao.AccessorFor(q.factory, q.rid)
	if err != nil {
		return err
	}
	r, err := RendererFor(q.rid)
	if err != nil {
		return err
	}

	q.mx.Lock()
	defer q.mx.Unlock()
	q.accessor, q.renderer = acc, r
	q.data = model1.NewTableData(r.Header())

	return nil
}

// SetAccessor sets the DAO accessor.
func (q *Query) SetAccessor(a dao.Accessor) {
	q.mx.Lock()
	defer q.mx.Unlock()
	q.accessor = a
}

// SetRenderer sets the renderer for converting DAO objects to rows.
func (q *Query) SetRenderer(r model1.Renderer) {
	q.mx.Lock()
	defer q.mx.Unlock()
	q.renderer = r
	q.data = model1.NewTableData(r.Header())
}

// Accessor returns the DAO accessor.
func (q *Query) Accessor() dao.Accessor {
	q.mx.RLock()
	defer q.mx.RUnlock()
	return q.accessor
}

// Header returns the table header.
func (q *Query) Header() model1.Header {
	q.mx.RLock()
	defer q.mx.RUnlock()
	if q.renderer == nil {
		return nil
	}
	return q.renderer.Header()
}

// Status returns the fetch status.
func (q *Query) Status() Status {
	q.mx.RLock()
	defer q.mx.RUnlock()
	return q.status
}

// Err returns the last fetch error.
func (q *Query) Err() error {
	q.mx.RLock()
	defer q.mx.RUnlock()
	return q.err
}

// AddListener registers a table listener.
func (q *Query) AddListener(l TableListener) {
	q.mx.Lock()
	defer q.mx.Unlock()
	q.listeners = append(q.listeners, l)
}

// RemoveListener unregisters a table listener.
func (q *Query) RemoveListener(l TableListener) {
	q.mx.Lock()
	defer q.mx.Unlock()

	for i, listener := range q.listeners {
		if listener == l {
			q.listeners = append(q.listeners[:i], q.listeners[i+1:]...)
			return
		}
	}
}

// Watch fetches once, then keeps refreshing at the refresh rate until Stop.
func (q *Query) Watch(ctx context.Context) error {
	q.mx.Lock()
	if q.cancelFn != nil {
		q.cancelFn()
	}
	watchCtx, cancel := context.WithCancel(ctx)
	q.cancelFn = cancel
	rate := q.refreshRate
	q.mx.Unlock()

	err := q.Refresh(watchCtx)
	if rate > 0 {
		go q.watchLoop(watchCtx, rate)
	}

	return err
}

func (q *Query) watchLoop(ctx context.Context, rate time.Duration) {
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := q.Refresh(ctx); err != nil {
				slog.Debug("watch refresh failed", "rid", q.rid.String(), "error", err)
			}
		}
	}
}

// Refresh fetches the collection immediately. It doubles as retry: when
// there is nothing to show yet, listeners see the pending state first.
func (q *Query) Refresh(ctx context.Context) error {
	q.mx.Lock()
	accessor, renderer := q.accessor, q.renderer
	if accessor == nil || renderer == nil {
		q.mx.Unlock()
		return fmt.Errorf("query %s is not initialized", q.rid)
	}
	showPending := q.status != StatusSuccess
	if showPending {
		q.status, q.err = StatusPending, nil
	}
	q.mx.Unlock()

	if showPending {
		q.notifyLoading()
	}

	objects, err := accessor.List(ctx)
	if err != nil {
		q.mx.Lock()
		q.status, q.err = StatusError, err
		q.mx.Unlock()
		q.notifyLoadFailed(err)
		return err
	}

	header := renderer.Header()
	rows := make(model1.Rows, 0, len(objects))
	for _, o := range objects {
		row := model1.NewRow(len(header))
		if err := renderer.Render(o.GetRaw(), &row); err != nil {
			slog.Warn("render failed", "rid", q.rid.String(), "id", o.GetID(), "error", err)
			continue
		}
		row.ID, row.Object = o.GetID(), o.GetRaw()
		rows = append(rows, row)
	}

	q.mx.Lock()
	q.data.SetHeader(header)
	q.data.SetRows(rows)
	q.status, q.err = StatusSuccess, nil
	data := q.data.Clone()
	q.mx.Unlock()

	if data.Empty() {
		q.notifyNoData(data)
	} else {
		q.notifyDataChanged(data)
	}

	return nil
}

// Stop stops the watch loop. In-flight fetches still complete.
func (q *Query) Stop() {
	q.mx.Lock()
	defer q.mx.Unlock()

	if q.cancelFn != nil {
		q.cancelFn()
		q.cancelFn = nil
	}
}

func (q *Query) snapshotListeners() []TableListener {
	q.mx.RLock()
	defer q.mx.RUnlock()
	ll := make([]TableListener, len(q.listeners))
	copy(ll, q.listeners)
	return ll
}

func (q *Query) notifyLoading() {
	for _, l := range q.snapshotListeners() {
		l.TableLoading()
	}
}

func (q *Query) notifyNoData(data *model1.TableData) {
	for _, l := range q.snapshotListeners() {
		l.TableNoData(data)
	}
}

func (q *Query) notifyDataChanged(data *model1.TableData) {
	for _, l := range q.snapshotListeners() {
		l.TableDataChanged(data)
	}
}

func (q *Query) notifyLoadFailed(err error) {
	for _, l := range q.snapshotListeners() {
		l.TableLoadFailed(err)
	}
}

// RendererFor returns the appropriate renderer for the given resource ID.
func RendererFor(rid *dao.ResourceID) (model1.Renderer, error) {
	switch rid.String() {
	case dao.ProductRID.String():
		return &render.Product{}, nil
	case dao.CategoryRID.String():
		return &render.Category{}, nil
	case dao.SaleRID.String():
		return &render.Sale{}, nil
	default:
		return nil, fmt.Errorf("no renderer for resource: %s", rid.String())
	}
}
