package main

import (
	_ "titansync/docs"
	"titansync/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           TitanSync Admin API
// @version         1.0
// @description     Administrative surface for the ServiceTitan sales-estimate sync (settings, webhooks, gifs, polling status).

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
