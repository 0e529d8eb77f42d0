package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/2beens/ihealth/internal/envcheck"
	"github.com/2beens/ihealth/pkg"
)

func main() {
	envPath := flag.String("file", ".env.local", "env file to check")
	examplePath := flag.String("example", ".env.local.example", "example env file suggested when the env file is missing")
	flag.Parse()

	fmt.Println("checking environment configuration ...")

	report, err := envcheck.Check(*envPath)
	if errors.Is(err, envcheck.ErrEnvFileMissing) {
		fmt.Printf("%s file not found!\n", *envPath)
		if ok, _ := pkg.PathExists(*examplePath, false); ok {
			fmt.Printf("found %s, you can copy it:\n   cp %s %s\n", *examplePath, *examplePath, *envPath)
		} else {
			fmt.Printf("create %s with the required environment variables.\n", *envPath)
		}

		fmt.Println("\nenvironment variables:")
		for _, v := range envcheck.Variables {
			kind := "OPTIONAL"
			if v.Required {
				kind = "REQUIRED"
			}
			fmt.Printf("   %s %s - %s\n", kind, v.Name, v.Description)
		}
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("check failed: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("\nenvironment variables status:")
	for _, s := range report.Statuses {
		switch {
		case s.Required && s.Present:
			fmt.Printf("   [ok] %s - set\n", s.Name)
		case s.Required:
			fmt.Printf("   [missing] %s - missing (REQUIRED)\n", s.Name)
		case s.Present:
			fmt.Printf("   [ok] %s - set (enables: %s)\n", s.Name, s.Description)
		default:
			fmt.Printf("   [-] %s - not set (optional)\n", s.Name)
		}
	}

	fmt.Println("\nsummary:")
	if report.HasOptionalFeatures {
		fmt.Println("   optional features are configured and will be available")
	} else {
		fmt.Println("   consider adding optional environment variables for extra features")
	}
	if !report.AllRequiredPresent {
		fmt.Printf("   some required environment variables are missing: %v\n", report.Missing())
		os.Exit(1)
	}
	fmt.Println("   all required environment variables are set")
}
