// Package timezone pins the application's zone, read from APP_TIMEZONE when the package
// is first imported.
//
// Stored instants are zone-agnostic. The zone only matters at the edges:
//
//	timezone.Now()                  // wall clock behind clock.System
//	timezone.Format(t, layout)      // response timestamps
//	timezone.ParseRFC3339(value)    // request timestamps, keeping the caller's offset
//
// Request times are never reinterpreted in the application zone. Working hours carry
// their own offset and instants are compared in it.
package timezone
