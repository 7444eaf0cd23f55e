package registry

// The following functions are a default set of filters that can be used with
// the Filter method of the store interfaces. They are composable; for
// example, to select the schedules of a route:
//
//	records := store.Filter(
//		ScheduleByRouteID(1),
//	)
//
// Custom filters can be supplied by implementing the FilterFunc type.

var _ FilterFunc[int, Route] = RouteByNumber("")
var _ FilterFunc[int, Passenger] = PassengerByCardNumber("")
var _ FilterFunc[int, Schedule] = ScheduleByRouteID(0)

// recordFilter returns a filter that includes records for which the
// predicate returns true.
func recordFilter[K comparable, R UniqueRecord[K]](predicate func(record R) bool) FilterFunc[K, R] {
	return func(records []R) []R {
		filtered := make([]R, 0, len(records))
		for _, record := range records {
			if predicate(record) {
				filtered = append(filtered, record)
			}
		}

		return filtered
	}
}

// RouteByNumber returns a filter that only includes routes with the provided
// line number.
func RouteByNumber(number string) FilterFunc[int, Route] {
	return recordFilter[int](func(record Route) bool {
		return record.Number == number
	})
}

// PassengerByCardNumber returns a filter that only includes passengers with
// the provided card number.
func PassengerByCardNumber(cardNumber string) FilterFunc[int, Passenger] {
	return recordFilter[int](func(record Passenger) bool {
		return record.CardNumber == cardNumber
	})
}

// ScheduleByRouteID returns a filter that only includes schedules referring
// to the provided route id. The route itself may or may not exist; schedule
// route ids are not validated.
func ScheduleByRouteID(routeID int) FilterFunc[int, Schedule] {
	return recordFilter[int](func(record Schedule) bool {
		return record.RouteID == routeID
	})
}
