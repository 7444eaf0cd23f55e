package registry

import (
	"bytes"
	"encoding/xml"
	"os"
)

// The XML export is write-only: there is no XML loader and the produced
// documents are not meant to be read back by this system. Element names
// mirror the JSON key names so both exports describe the same fields.

type xmlVehicle struct {
	ID       int    `xml:"vehicle_id"`
	Model    string `xml:"model"`
	Capacity int    `xml:"capacity"`
	Type     string `xml:"type"`
}

// xmlVehicles keeps the Vehicles wrapper element present even when a route
// has no vehicles.
type xmlVehicles struct {
	Vehicles []xmlVehicle `xml:"Vehicle"`
}

type xmlRoute struct {
	ID         int         `xml:"route_id"`
	Number     string      `xml:"number"`
	StartPoint string      `xml:"start_point"`
	EndPoint   string      `xml:"end_point"`
	Vehicles   xmlVehicles `xml:"Vehicles"`
}

type xmlPassenger struct {
	ID         int    `xml:"passenger_id"`
	Name       string `xml:"name"`
	CardNumber string `xml:"card_number"`
}

type xmlSchedule struct {
	ID            int    `xml:"schedule_id"`
	RouteID       int    `xml:"route_id"`
	DepartureTime string `xml:"departure_time"`
	ArrivalTime   string `xml:"arrival_time"`
}

// The section wrappers below keep the Routes, Passengers and Schedules
// elements present in the document even when a collection is empty.

type xmlRoutes struct {
	Routes []xmlRoute `xml:"Route"`
}

type xmlPassengers struct {
	Passengers []xmlPassenger `xml:"Passenger"`
}

type xmlSchedules struct {
	Schedules []xmlSchedule `xml:"Schedule"`
}

type xmlDocument struct {
	XMLName    xml.Name      `xml:"TransportSystem"`
	Routes     xmlRoutes     `xml:"Routes"`
	Passengers xmlPassengers `xml:"Passengers"`
	Schedules  xmlSchedules  `xml:"Schedules"`
}

// SaveXML writes the registry as a pretty-printed UTF-8 XML document at
// path. The write is not atomic. Any failure is wrapped in a
// FileOperationError.
func (r *MemoryRegistry) SaveXML(path string) error {
	doc := xmlDocument{}

	for _, route := range r.RouteStore.Fetch() {
		vehicles := make([]xmlVehicle, 0, len(route.Vehicles))
		for _, v := range route.Vehicles {
			vehicles = append(vehicles, xmlVehicle{
				ID:       v.ID,
				Model:    v.Model,
				Capacity: v.Capacity,
				Type:     v.Type,
			})
		}
		doc.Routes.Routes = append(doc.Routes.Routes, xmlRoute{
			ID:         route.ID,
			Number:     route.Number,
			StartPoint: route.StartPoint,
			EndPoint:   route.EndPoint,
			Vehicles:   xmlVehicles{Vehicles: vehicles},
		})
	}

	for _, p := range r.PassengerStore.Fetch() {
		doc.Passengers.Passengers = append(doc.Passengers.Passengers, xmlPassenger{
			ID:         p.ID,
			Name:       p.Name,
			CardNumber: p.CardNumber,
		})
	}

	for _, s := range r.ScheduleStore.Fetch() {
		doc.Schedules.Schedules = append(doc.Schedules.Schedules, xmlSchedule{
			ID:            s.ID,
			RouteID:       s.RouteID,
			DepartureTime: s.DepartureTime,
			ArrivalTime:   s.ArrivalTime,
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &FileOperationError{Op: "save xml", Path: path, Err: err}
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return &FileOperationError{Op: "save xml", Path: path, Err: err}
	}

	return nil
}
