package weatherstation

// Observer is the capability a display must expose to receive a new
// measurement from the station.
type Observer interface {
	Update(temperature float64)
}

// observerFunc adapts a bare function to the Observer capability. It is a
// pointer type so the handle returned by AttachFunc has a stable identity
// and can later be passed to Detach.
type observerFunc struct {
	handler func(temperature float64)
}

func (o *observerFunc) Update(temperature float64) {
	o.handler(temperature)
}
