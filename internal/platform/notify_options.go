// Package platform delivers desktop notifications through the host's
// notification service.
package platform

// DefaultAppName identifies the sender when Options.AppName is empty.
const DefaultAppName = "Snack Time"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName is the sending application as shown by the notification center.
	AppName string
	// IconPath, when non-empty, points to an image file shown with the
	// notification where supported.
	IconPath string
	// TimeoutMS is how long the notification stays up; zero uses 5000.
	TimeoutMS int32
}

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}

func (o Options) timeout() int32 {
	if o.TimeoutMS <= 0 {
		return 5000
	}
	return o.TimeoutMS
}
