package circuit_test

import (
	"fmt"

	"github.com/railkit/roundtour/circuit"
	"github.com/railkit/roundtour/metric"
	"github.com/railkit/roundtour/timetable"
)

// ExampleSolve builds a three-station ring from raw records and solves
// it by price.
//
// Scenario:
//
//	A →(10$) B →(5$) C →(7$) A
//
// The visiting sequence is the sorted station indices A=0, B=1, C=2 and
// the total includes the wrap edge C→A.
func ExampleSolve() {
	records := []timetable.Record{
		{ID: "t1", Origin: "A", Destination: "B", Price: "10", Departure: "08:00", Arrival: "08:30"},
		{ID: "t2", Origin: "B", Destination: "C", Price: "5", Departure: "08:30", Arrival: "09:00"},
		{ID: "t3", Origin: "C", Destination: "A", Price: "7", Departure: "09:00", Arrival: "09:30"},
	}

	g, err := circuit.Build(records, metric.Price)
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	res, err := circuit.Solve(g, circuit.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)

		return
	}

	for _, idx := range res.Order {
		fmt.Println(g.Stations[idx])
	}
	fmt.Println("total:", metric.Price.FormatTotal(res.Total))
	// Output:
	// A
	// B
	// C
	// total: 22.00$
}
