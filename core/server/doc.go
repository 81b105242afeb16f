// Package server holds the HTTP server configuration.
//
// The main application entry point builds the Fiber app; this package only defines
// the settings it is built from: listen port, API key and the request limits that
// bound uploaded import documents.
//
// # Usage
//
//	app := fiber.New(fiber.Config{
//	    BodyLimit:   cfg.Server.BodyLimit(),
//	    ReadTimeout: cfg.Server.ReadTimeout(),
//	})
//	app.Listen(cfg.Server.Address())
package server
