package viewer

import "sync"

// Region identifies one of the four result sub-regions.
type Region int

const (
	RegionBasic Region = iota
	RegionDelivery
	RegionPayment
	RegionItems
	numRegions
)

func (r Region) String() string {
	switch r {
	case RegionBasic:
		return "orderBasic"
	case RegionDelivery:
		return "deliveryInfo"
	case RegionPayment:
		return "paymentInfo"
	case RegionItems:
		return "itemsInfo"
	default:
		return "unknown"
	}
}

// Target is the set of document mutations a lookup performs.
type Target interface {
	ShowError(msg string)
	HideError()
	ShowLoading()
	HideLoading()
	ShowResult()
	HideResult()
	SetRegion(r Region, content string)
}

// State is a point-in-time copy of a Document.
type State struct {
	Error         string
	ErrorVisible  bool
	Loading       bool
	ResultVisible bool
	Regions       [numRegions]string
}

// Region returns the content of r, or "" for an unknown region.
func (s State) Region(r Region) string {
	if r < 0 || r >= numRegions {
		return ""
	}
	return s.Regions[r]
}

// Document is an in-memory Target. Concurrent writers are serialized; the
// last write wins.
type Document struct {
	mu sync.RWMutex
	st State
}

// NewDocument returns an empty document with every region hidden.
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) ShowError(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.Error = msg
	d.st.ErrorVisible = true
}

func (d *Document) HideError() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.ErrorVisible = false
}

func (d *Document) ShowLoading() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.Loading = true
}

func (d *Document) HideLoading() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.Loading = false
}

func (d *Document) ShowResult() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.ResultVisible = true
}

func (d *Document) HideResult() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.ResultVisible = false
}

func (d *Document) SetRegion(r Region, content string) {
	if r < 0 || r >= numRegions {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.Regions[r] = content
}

func (d *Document) Snapshot() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.st
}
