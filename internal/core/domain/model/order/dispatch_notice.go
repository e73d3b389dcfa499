package order

// DispatchNotice is the flattened summary of a committed order that goes out
// to the dispatch channel so staff can route a courier. It carries plain
// exported fields because it leaves the domain: notifier adapters format it
// for their transport without touching the aggregate.
//
// The notice deliberately carries no customer identity. Staff work from the
// order code; the customer behind it stays private to the core.
type DispatchNotice struct {
	Code       string
	Address    string
	City       string
	DistanceKm float64
	Total      string
	Lines      []DispatchLine
}

// DispatchLine is one product position inside a DispatchNotice.
type DispatchLine struct {
	Name string
	Qty  int
}

// DispatchNotice builds the dispatch summary for this order.
func (o *Order) DispatchNotice() DispatchNotice {
	lines := make([]DispatchLine, 0, len(o.lines))
	for _, line := range o.lines {
		lines = append(lines, DispatchLine{
			Name: line.Name(),
			Qty:  line.Qty(),
		})
	}

	return DispatchNotice{
		Code:       o.code.String(),
		Address:    o.destination.Address(),
		City:       o.destination.City(),
		DistanceKm: o.destination.Distance().Km(),
		Total:      o.totals.Total().String(),
		Lines:      lines,
	}
}
