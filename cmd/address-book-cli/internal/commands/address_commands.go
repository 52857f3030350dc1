package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajeshvyas/address-book-service/internal/app"
	"github.com/ajeshvyas/address-book-service/internal/domain/addresses"
	"github.com/ajeshvyas/address-book-service/internal/infrastructure/persistence"
	"github.com/ajeshvyas/address-book-service/internal/infrastructure/persistence/models"
	"github.com/ajeshvyas/address-book-service/internal/pkg/config"
	"github.com/ajeshvyas/address-book-service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AddressCommandHandler encapsulates logic for handling address operations via CLI.
type AddressCommandHandler struct {
	addressService addresses.AddressService
	searchService  addresses.AddressSearchService
	logger         logger.Logger
}

// defaultConfigPath is used when neither --config nor CONFIG_PATH is set.
const defaultConfigPath = "configs/rest-app.yaml"

// initialize wires the logger, database connection and services the command
// handler operates on, reading configuration from configPath.
func (commandHandler *AddressCommandHandler) initialize(configPath string) error {
	loggerInstance, err := setupLogger()
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.AddressModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	addressRepo, err := persistence.NewGormAddressRepository(db, loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create address repository: %w", err)
	}

	addressService, err := app.NewAddressService(addressRepo, loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create address service: %w", err)
	}

	searchService, err := app.NewAddressSearchService(addressRepo, loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create address search service: %w", err)
	}

	commandHandler.addressService = addressService
	commandHandler.searchService = searchService
	commandHandler.logger = loggerInstance
	return nil
}

// resolveConfigPath selects the configuration file for the current
// invocation. The --config flag wins over the CONFIG_PATH environment
// variable; without either the default path is used.
func resolveConfigPath(cmd *cobra.Command) string {
	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		return path
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultConfigPath
}

// AddAddressCmd stores a new address record
func (commandHandler *AddressCommandHandler) AddAddressCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	latitude, err := cmd.Flags().GetFloat64("latitude")
	if err != nil {
		commandHandler.logger.Error("invalid latitude flag ", err)
		return
	}
	longitude, err := cmd.Flags().GetFloat64("longitude")
	if err != nil {
		commandHandler.logger.Error("invalid longitude flag ", err)
		return
	}

	address, err := commandHandler.addressService.Create(cmd.Context(), &addresses.Address{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created address with id ", address.ID)
}

// GetAddressCmd prints a single address record as JSON
func (commandHandler *AddressCommandHandler) GetAddressCmd(cmd *cobra.Command, _ []string) {
	addressID, err := cmd.Flags().GetUint("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	address, err := commandHandler.addressService.GetByID(cmd.Context(), addressID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	printJSON(commandHandler.logger, address)
}

// ListAddressesCmd prints address records as JSON, honoring filter flags
func (commandHandler *AddressCommandHandler) ListAddressesCmd(cmd *cobra.Command, _ []string) {
	query := addresses.NewAddressQuery()

	query.Name, _ = cmd.Flags().GetString("name")
	query.Limit, _ = cmd.Flags().GetInt("limit")
	query.Offset, _ = cmd.Flags().GetInt("offset")
	query.SortBy, _ = cmd.Flags().GetString("sort-by")
	query.SortOrder, _ = cmd.Flags().GetString("sort-order")

	addressList, err := commandHandler.addressService.List(cmd.Context(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	printJSON(commandHandler.logger, addressList)
}

// UpdateAddressCmd applies a partial update to an address record
func (commandHandler *AddressCommandHandler) UpdateAddressCmd(cmd *cobra.Command, _ []string) {
	addressID, err := cmd.Flags().GetUint("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	update := &addresses.AddressUpdate{}

	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		update.Name = &name
	}
	if cmd.Flags().Changed("latitude") {
		latitude, _ := cmd.Flags().GetFloat64("latitude")
		update.Latitude = &latitude
	}
	if cmd.Flags().Changed("longitude") {
		longitude, _ := cmd.Flags().GetFloat64("longitude")
		update.Longitude = &longitude
	}

	address, err := commandHandler.addressService.UpdateByID(cmd.Context(), addressID, update)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Updated address with id ", address.ID)
}

// DeleteAddressCmd deletes an address record by id
func (commandHandler *AddressCommandHandler) DeleteAddressCmd(cmd *cobra.Command, _ []string) {
	addressID, err := cmd.Flags().GetUint("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	if err := commandHandler.addressService.DeleteByID(cmd.Context(), addressID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Deleted address with id ", addressID)
}

// NearbyAddressesCmd prints the addresses inside the search box around a coordinate
func (commandHandler *AddressCommandHandler) NearbyAddressesCmd(cmd *cobra.Command, _ []string) {
	latitude, err := cmd.Flags().GetFloat64("latitude")
	if err != nil {
		commandHandler.logger.Error("invalid latitude flag ", err)
		return
	}
	longitude, err := cmd.Flags().GetFloat64("longitude")
	if err != nil {
		commandHandler.logger.Error("invalid longitude flag ", err)
		return
	}
	distance, err := cmd.Flags().GetFloat64("distance")
	if err != nil {
		commandHandler.logger.Error("invalid distance flag ", err)
		return
	}

	addressList, err := commandHandler.searchService.Nearby(cmd.Context(), &addresses.NearbyQuery{
		Latitude:  latitude,
		Longitude: longitude,
		Distance:  distance,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	printJSON(commandHandler.logger, addressList)
}

// importRecord is the JSON shape of one imported address
type importRecord struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ImportAddressesCmd loads address records from a JSON file
func (commandHandler *AddressCommandHandler) ImportAddressesCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		commandHandler.logger.Error("invalid import file: ", err)
		return
	}

	imported := 0
	for _, record := range records {
		_, err := commandHandler.addressService.Create(cmd.Context(), &addresses.Address{
			Name:      record.Name,
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		})
		if err != nil {
			commandHandler.logger.Error("skipping record ", record.Name, ": ", err)
			continue
		}
		imported++
	}

	commandHandler.logger.Info("Imported ", imported, " of ", len(records), " addresses from ", inputFilePath)
}

func printJSON(log logger.Logger, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error(err)
		return
	}
	fmt.Println(string(data))
}

// InitAddressCommands registers all address commands with the root command.
// The handler connects to the database in a PersistentPreRunE hook so that
// the --config flag is parsed before the configuration file is read.
func InitAddressCommands(rootCmd *cobra.Command) error {
	handler := &AddressCommandHandler{}

	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file (overrides CONFIG_PATH)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return handler.initialize(resolveConfigPath(cmd))
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new address record",
		Run:   handler.AddAddressCmd,
	}
	addCmd.Flags().String("name", "", "Name of the address")
	addCmd.Flags().Float64("latitude", 0, "Latitude in degrees")
	addCmd.Flags().Float64("longitude", 0, "Longitude in degrees")
	rootCmd.AddCommand(addCmd)

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print an address record by id",
		Run:   handler.GetAddressCmd,
	}
	getCmd.Flags().Uint("id", 0, "Address id")
	rootCmd.AddCommand(getCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List address records",
		Run:   handler.ListAddressesCmd,
	}
	listCmd.Flags().String("name", "", "Name substring filter")
	listCmd.Flags().Int("limit", 0, "Limit the number of results")
	listCmd.Flags().Int("offset", 0, "Offset the results")
	listCmd.Flags().String("sort-by", "", "Sort by a specific field")
	listCmd.Flags().String("sort-order", "", "Sort order (asc/desc)")
	rootCmd.AddCommand(listCmd)

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Apply a partial update to an address record",
		Run:   handler.UpdateAddressCmd,
	}
	updateCmd.Flags().Uint("id", 0, "Address id")
	updateCmd.Flags().String("name", "", "New name")
	updateCmd.Flags().Float64("latitude", 0, "New latitude in degrees")
	updateCmd.Flags().Float64("longitude", 0, "New longitude in degrees")
	rootCmd.AddCommand(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an address record by id",
		Run:   handler.DeleteAddressCmd,
	}
	deleteCmd.Flags().Uint("id", 0, "Address id")
	rootCmd.AddCommand(deleteCmd)

	nearbyCmd := &cobra.Command{
		Use:   "nearby",
		Short: "Search addresses near a coordinate",
		Run:   handler.NearbyAddressesCmd,
	}
	nearbyCmd.Flags().Float64("latitude", 0, "Center latitude in degrees")
	nearbyCmd.Flags().Float64("longitude", 0, "Center longitude in degrees")
	nearbyCmd.Flags().Float64("distance", 0, "Search radius in degrees")
	rootCmd.AddCommand(nearbyCmd)

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import address records from a JSON file",
		Run:   handler.ImportAddressesCmd,
	}
	importCmd.Flags().String("input-file", "", "Path to a JSON file with address records")
	rootCmd.AddCommand(importCmd)

	return nil
}
