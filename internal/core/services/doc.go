// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// HeadnoteService runs the read, segment and extract pipeline and hands
// results to the store. SettingsService maps settings onto config keys.
package services
