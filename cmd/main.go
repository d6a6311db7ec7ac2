// cmd/main.go
package main

import (
	"isidro-api/app"

	_ "isidro-api/docs"
)

// @title           ISIDRO Web API
// @version         1.0
// @description     Discipleship-tracking API for church members: accounts, profiles, devotions, trainings, ministry activities, attendance and outreach.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
