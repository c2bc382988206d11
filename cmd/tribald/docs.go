package main

// General API documentation for swaggo. Run `swag init -g cmd/tribald/main.go`
// and build with -tags=swagger to serve the UI.
//
// @title           tribald API
// @version         1.0
// @description     HTTP API for describing tribal artwork with a local vision-language model and translating the result.
//
// @contact.name   tribald maintainers
// @contact.url    https://github.com/your-org/tribald
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
