package main

import (
	"go.mongodb.org/mongo-driver/bson"

	"rechargetravels/internal/content/store"
	activityhandler "rechargetravels/internal/familyactivities/handler"
	activityservice "rechargetravels/internal/familyactivities/service"
	slidehandler "rechargetravels/internal/heroslides/handler"
	slideservice "rechargetravels/internal/heroslides/service"
	pilgrimagehandler "rechargetravels/internal/pilgrimage/handler"
	pilgrimageservice "rechargetravels/internal/pilgrimage/service"
	vehiclehandler "rechargetravels/internal/vehicles/handler"
	vehicleservice "rechargetravels/internal/vehicles/service"
	"rechargetravels/pkg/app"
	"rechargetravels/pkg/clock"
	"rechargetravels/pkg/config"
	"rechargetravels/pkg/model"
)

const ServiceName = "content"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Content service")
	cfg.SetMongo()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(initHandlers(cfg)...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config) []app.Handler {
	clk := clock.System()
	byName := bson.D{{Key: "name", Value: 1}}
	byOrder := bson.D{{Key: "order", Value: 1}}
	byTitle := bson.D{{Key: "title", Value: 1}}

	vehicles := vehicleservice.NewVehicleService(
		store.New[model.GroupVehicle](cfg, vehicleservice.CollectionName, byName), clk, cfg.Log)
	slides := slideservice.NewSlideService(
		store.New[model.HeroSlide](cfg, slideservice.CollectionName, byOrder), clk, cfg.Log)
	pilgrimage := pilgrimageservice.NewPilgrimageService(
		store.New[model.PilgrimageSite](cfg, pilgrimageservice.SitesCollection, byOrder),
		store.New[model.PilgrimageTour](cfg, pilgrimageservice.ToursCollection, byOrder),
		store.New[model.PilgrimageFAQ](cfg, pilgrimageservice.FAQsCollection, byOrder),
		clk, cfg.Log)
	activities := activityservice.NewActivityService(
		store.New[model.FamilyActivity](cfg, activityservice.CollectionName, byTitle), clk, cfg.Log)

	cfg.Log.Info("Content services initialized", "database", cfg.MongoDatabaseName)

	return []app.Handler{
		vehiclehandler.NewVehicleHandler(vehicles, cfg.Log),
		slidehandler.NewSlideHandler(slides, cfg.Log),
		pilgrimagehandler.NewPilgrimageHandler(pilgrimage, cfg.Log),
		activityhandler.NewActivityHandler(activities, cfg.Log),
	}
}
