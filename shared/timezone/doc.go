// Package timezone holds the rental desk's wall clock. Relative dates a caller says
// ("this Saturday") are resolved against it, so it must match the business, not the host.
//
// Call Init once at process start:
//
//	timezone.Init(cfg.App.Timezone)
//
// Before Init every helper uses UTC.
package timezone
