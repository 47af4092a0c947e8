package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/orghandbook/orghandbook-api/internal/client"
)

const usageText = `orgctl - command line client for the org handbook API

Usage:
  orgctl [-base-url URL] [-api-key KEY] <command> [subcommand] [flags]

Commands:
  organizations  list | get | create | update | delete | by-building |
                 by-activity | search-name | search-radius | search-area
  buildings      list | get | create | update | delete
  activities     list | get | create | update | delete | tree
  seed           create the demo dataset
  health         check server liveness
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
}

// stringList collects repeated string flags.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// uintList collects repeated integer flags.
type uintList []uint64

func (u *uintList) String() string {
	parts := make([]string, len(*u))
	for i, v := range *u {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, ",")
}

func (u *uintList) Set(v string) error {
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return err
	}
	*u = append(*u, id)
	return nil
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8000", "Base API URL")
	apiKey := flag.String("api-key", "secret-static-api-key", "API key sent with every request")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	c := client.New(*baseURL, *apiKey)

	var err error
	switch args[0] {
	case "organizations":
		err = runOrganizations(c, args[1:])
	case "buildings":
		err = runBuildings(c, args[1:])
	case "activities":
		err = runActivities(c, args[1:])
	case "seed":
		err = runSeed(c)
	case "health":
		err = printResult(c.HealthCheck())
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func printResult(result json.RawMessage, err error) error {
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, result, "", "  "); err != nil {
		fmt.Println(string(result))
		return nil
	}
	fmt.Println(out.String())
	return nil
}

// idArg parses the single positional id argument of a subcommand.
func idArg(args []string, command string) (uint64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s takes exactly one ID argument", command)
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q", args[0])
	}
	return id, nil
}

func runOrganizations(c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("organizations requires a subcommand")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("organizations list", flag.ExitOnError)
		skip := fs.Int("skip", 0, "Skip records")
		limit := fs.Int("limit", 100, "Limit records")
		fs.Parse(args[1:])
		return printResult(c.GetOrganizations(*skip, *limit))

	case "get":
		id, err := idArg(args[1:], "organizations get")
		if err != nil {
			return err
		}
		return printResult(c.GetOrganization(id))

	case "create":
		fs := flag.NewFlagSet("organizations create", flag.ExitOnError)
		legalName := fs.String("legal-name", "", "Legal name (required)")
		buildingID := fs.Uint64("building-id", 0, "Building ID (required)")
		var phones stringList
		var activities uintList
		fs.Var(&phones, "phone", "Phone number (repeatable)")
		fs.Var(&activities, "activity", "Activity ID (repeatable)")
		fs.Parse(args[1:])

		data := map[string]any{
			"legal_name":    *legalName,
			"building_id":   *buildingID,
			"phone_numbers": []string(phones),
			"activity_ids":  []uint64(activities),
		}
		return printResult(c.CreateOrganization(data))

	case "update":
		if len(args) < 2 {
			return fmt.Errorf("organizations update takes an ID argument")
		}
		id, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[1])
		}

		fs := flag.NewFlagSet("organizations update", flag.ExitOnError)
		legalName := fs.String("legal-name", "", "New legal name")
		buildingID := fs.Uint64("building-id", 0, "New building ID")
		fs.Parse(args[2:])

		data := map[string]any{}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "legal-name":
				data["legal_name"] = *legalName
			case "building-id":
				data["building_id"] = *buildingID
			}
		})
		return printResult(c.UpdateOrganization(id, data))

	case "delete":
		id, err := idArg(args[1:], "organizations delete")
		if err != nil {
			return err
		}
		return printResult(c.DeleteOrganization(id))

	case "by-building":
		id, err := idArg(args[1:], "organizations by-building")
		if err != nil {
			return err
		}
		return printResult(c.GetOrganizationsByBuilding(id))

	case "by-activity":
		id, err := idArg(args[1:], "organizations by-activity")
		if err != nil {
			return err
		}
		return printResult(c.GetOrganizationsByActivity(id))

	case "search-name":
		if len(args) != 2 {
			return fmt.Errorf("organizations search-name takes a name argument")
		}
		return printResult(c.SearchOrganizationsByName(args[1]))

	case "search-radius":
		fs := flag.NewFlagSet("organizations search-radius", flag.ExitOnError)
		lat := fs.Float64("lat", 0, "Latitude")
		lon := fs.Float64("lon", 0, "Longitude")
		radiusKM := fs.Float64("radius-km", 0, "Radius in kilometers")
		fs.Parse(args[1:])
		return printResult(c.GetOrganizationsInRadius(*lat, *lon, *radiusKM))

	case "search-area":
		fs := flag.NewFlagSet("organizations search-area", flag.ExitOnError)
		minLat := fs.Float64("min-lat", 0, "Minimum latitude")
		maxLat := fs.Float64("max-lat", 0, "Maximum latitude")
		minLon := fs.Float64("min-lon", 0, "Minimum longitude")
		maxLon := fs.Float64("max-lon", 0, "Maximum longitude")
		fs.Parse(args[1:])
		return printResult(c.GetOrganizationsInArea(*minLat, *maxLat, *minLon, *maxLon))

	default:
		return fmt.Errorf("unknown organizations subcommand %q", args[0])
	}
}

func runBuildings(c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("buildings requires a subcommand")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("buildings list", flag.ExitOnError)
		skip := fs.Int("skip", 0, "Skip records")
		limit := fs.Int("limit", 100, "Limit records")
		fs.Parse(args[1:])
		return printResult(c.GetBuildings(*skip, *limit))

	case "get":
		id, err := idArg(args[1:], "buildings get")
		if err != nil {
			return err
		}
		return printResult(c.GetBuilding(id))

	case "create":
		fs := flag.NewFlagSet("buildings create", flag.ExitOnError)
		address := fs.String("address", "", "Address (required)")
		longitude := fs.Float64("longitude", 0, "Longitude")
		latitude := fs.Float64("latitude", 0, "Latitude")
		fs.Parse(args[1:])

		data := map[string]any{
			"address":   *address,
			"longitude": *longitude,
			"latitude":  *latitude,
		}
		return printResult(c.CreateBuilding(data))

	case "update":
		if len(args) < 2 {
			return fmt.Errorf("buildings update takes an ID argument")
		}
		id, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[1])
		}

		fs := flag.NewFlagSet("buildings update", flag.ExitOnError)
		address := fs.String("address", "", "New address")
		longitude := fs.Float64("longitude", 0, "New longitude")
		latitude := fs.Float64("latitude", 0, "New latitude")
		fs.Parse(args[2:])

		data := map[string]any{}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "address":
				data["address"] = *address
			case "longitude":
				data["longitude"] = *longitude
			case "latitude":
				data["latitude"] = *latitude
			}
		})
		return printResult(c.UpdateBuilding(id, data))

	case "delete":
		id, err := idArg(args[1:], "buildings delete")
		if err != nil {
			return err
		}
		return printResult(c.DeleteBuilding(id))

	default:
		return fmt.Errorf("unknown buildings subcommand %q", args[0])
	}
}

func runActivities(c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("activities requires a subcommand")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("activities list", flag.ExitOnError)
		skip := fs.Int("skip", 0, "Skip records")
		limit := fs.Int("limit", 100, "Limit records")
		fs.Parse(args[1:])
		return printResult(c.GetActivities(*skip, *limit))

	case "get":
		id, err := idArg(args[1:], "activities get")
		if err != nil {
			return err
		}
		return printResult(c.GetActivity(id))

	case "create":
		fs := flag.NewFlagSet("activities create", flag.ExitOnError)
		name := fs.String("name", "", "Name (required)")
		parentID := fs.Uint64("parent-id", 0, "Parent activity ID (0 for a root)")
		level := fs.Int("level", 0, "Tree level")
		fs.Parse(args[1:])

		data := map[string]any{
			"name":  *name,
			"level": *level,
		}
		if *parentID != 0 {
			data["parent_id"] = *parentID
		} else {
			data["parent_id"] = nil
		}
		return printResult(c.CreateActivity(data))

	case "update":
		if len(args) < 2 {
			return fmt.Errorf("activities update takes an ID argument")
		}
		id, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[1])
		}

		fs := flag.NewFlagSet("activities update", flag.ExitOnError)
		name := fs.String("name", "", "New name")
		parentID := fs.Uint64("parent-id", 0, "New parent activity ID")
		level := fs.Int("level", 0, "New tree level")
		fs.Parse(args[2:])

		data := map[string]any{}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				data["name"] = *name
			case "parent-id":
				data["parent_id"] = *parentID
			case "level":
				data["level"] = *level
			}
		})
		return printResult(c.UpdateActivity(id, data))

	case "delete":
		id, err := idArg(args[1:], "activities delete")
		if err != nil {
			return err
		}
		return printResult(c.DeleteActivity(id))

	case "tree":
		var parentID *uint64
		if len(args) > 1 {
			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid parent ID %q", args[1])
			}
			parentID = &id
		}
		return printResult(c.GetActivityTree(parentID))

	default:
		return fmt.Errorf("unknown activities subcommand %q", args[0])
	}
}

// runSeed loads the demo dataset: three buildings, a two-branch activity
// tree and three organizations tagged across it.
func runSeed(c *client.Client) error {
	buildings := []map[string]any{
		{"address": "г. Москва, ул. Ленина 1, офис 3", "longitude": 37.6173, "latitude": 55.7558},
		{"address": "г. Москва, ул. Тверская 10", "longitude": 37.6095, "latitude": 55.7601},
		{"address": "г. Санкт-Петербург, Невский пр. 100", "longitude": 30.3351, "latitude": 59.9343},
	}

	activities := []map[string]any{
		{"name": "Еда", "parent_id": nil, "level": 0},
		{"name": "Мясная продукция", "parent_id": 1, "level": 1},
		{"name": "Молочная продукция", "parent_id": 1, "level": 1},
		{"name": "Автомобили", "parent_id": nil, "level": 0},
		{"name": "Грузовые", "parent_id": 4, "level": 1},
		{"name": "Легковые", "parent_id": 4, "level": 1},
		{"name": "Запчасти", "parent_id": 4, "level": 1},
		{"name": "Аксессуары", "parent_id": 7, "level": 2},
	}

	organizations := []map[string]any{
		{
			"legal_name":    `ООО "Рога и Копыта"`,
			"building_id":   1,
			"phone_numbers": []string{"2-222-222", "3-333-333", "8-923-666-13-13"},
			"activity_ids":  []uint64{2, 3},
		},
		{
			"legal_name":    `ООО "АвтоМир"`,
			"building_id":   2,
			"phone_numbers": []string{"4-444-444", "5-555-555"},
			"activity_ids":  []uint64{5, 6},
		},
		{
			"legal_name":    `ООО "Запчасти и аксессуары"`,
			"building_id":   3,
			"phone_numbers": []string{"6-666-666"},
			"activity_ids":  []uint64{8},
		},
	}

	for _, data := range buildings {
		result, err := c.CreateBuilding(data)
		if err != nil {
			return err
		}
		fmt.Printf("Created building: %s\n", result)
	}

	for _, data := range activities {
		result, err := c.CreateActivity(data)
		if err != nil {
			return err
		}
		fmt.Printf("Created activity: %s\n", result)
	}

	for _, data := range organizations {
		result, err := c.CreateOrganization(data)
		if err != nil {
			return err
		}
		fmt.Printf("Created organization: %s\n", result)
	}

	fmt.Println("Seed data created successfully!")
	return nil
}
