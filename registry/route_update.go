package registry

// RouteUpdate describes a partial update to a Route. Nil fields leave the
// corresponding record field untouched, so callers set only what they want
// changed. The route id and its vehicle list are not updatable through this
// type; vehicles are managed with AddVehicle and RemoveVehicle.
type RouteUpdate struct {
	Number     *string
	StartPoint *string
	EndPoint   *string
}

// apply returns a copy of the route with the set fields overwritten.
func (u RouteUpdate) apply(r Route) Route {
	if u.Number != nil {
		r.Number = *u.Number
	}
	if u.StartPoint != nil {
		r.StartPoint = *u.StartPoint
	}
	if u.EndPoint != nil {
		r.EndPoint = *u.EndPoint
	}

	return r
}
