package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrussa/orderview/internal/viewer"
)

var sections = []struct {
	title  string
	region viewer.Region
}{
	{"Order", viewer.RegionBasic},
	{"Delivery", viewer.RegionDelivery},
	{"Payment", viewer.RegionPayment},
	{"Items", viewer.RegionItems},
}

// termDocument reports the loading indicator on the status stream.
type termDocument struct {
	*viewer.Document
	status io.Writer
}

func (d *termDocument) ShowLoading() {
	d.Document.ShowLoading()
	fmt.Fprintln(d.status, "Loading...")
}

func printState(w io.Writer, st viewer.State) {
	if st.ErrorVisible {
		fmt.Fprintf(w, "Error: %s\n", st.Error)
		return
	}
	if !st.ResultVisible {
		return
	}
	for _, s := range sections {
		fmt.Fprintf(w, "== %s ==\n", s.title)
		if body := strings.TrimRight(st.Region(s.region), "\n"); body != "" {
			fmt.Fprintln(w, body)
		}
	}
	fmt.Fprintln(w)
}
