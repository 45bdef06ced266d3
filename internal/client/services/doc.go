// Package services contains the application services of the recipebox
// client that sit on top of the HTTP gateway: recipe generation, dashboard,
// account recovery, feedback and featured recipes.
//
// Each service is exposed as an interface with an unexported
// implementation so the CLI can be tested against fakes.
package services
