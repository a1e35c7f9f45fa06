// @title           AR Portal API
// @version         1.0
// @description     Regulatory compliance back office for Authorized Representative services.
// @host            localhost:8080
// @BasePath        /api/v1

package main

import "arportal/internal/app"

func main() {
	app.Run()
}
