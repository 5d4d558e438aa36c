// @title AIC 2025 Judging Dashboard
// @version 1.0
// @description Judge login, rubric scoring, final ranking and final score administration for AIC 2025

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	_ "github.com/Dinhh-Chan/aic-judges/docs"

	"github.com/Dinhh-Chan/aic-judges/cmd"
)

func main() {
	cmd.Execute()
}
