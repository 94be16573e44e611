// Command seed clears and repopulates the lesser-known-sites catalogue.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/infra"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/models/db_models"
	"github.com/NourAlnujoom/Asfar-tourism-assistant/internal/repositories"
)

var lesserKnownSites = []db_models.Site{
	{SiteName: "Jabal al-Qalaa", Category: "Historical Site", Description: "Ancient citadel in Amman with Roman ruins and panoramic city views."},
	{SiteName: "Shobak Castle", Category: "Historical Site", Description: "Crusader castle with tunnels and stone walls in the mountains of Shobak."},
	{SiteName: "Ajloun Forest Reserve", Category: "Nature Reserve", Description: "Lush reserve with hiking trails and cabins, perfect for nature lovers."},
	{SiteName: "Palm Village Restaurant", Category: "Food Spot", Description: "Local food spot with scenic views and traditional dishes."},
	{SiteName: "O2 View", Category: "Café", Description: "Modern coffee house in Amman popular among youth for studying and hanging out."},
	{SiteName: "Jordan National Gallery of Fine Art", Category: "Art Space", Description: "Hidden gallery with rotating exhibitions from local and regional artists."},
	{SiteName: "BAN COFFEE HOUSE", Category: "Café", Description: "Cozy café in Amman with a relaxed vibe and artisanal drinks."},
	{SiteName: "Umm Qais", Category: "Historical Site", Description: "Roman ruins with views of the Sea of Galilee and Golan Heights."},
	{SiteName: "Jordan Museum", Category: "Museum", Description: "National museum featuring artifacts like the Dead Sea Scrolls."},
	{SiteName: "Blooming Brothers Coffee Co", Category: "Café", Description: "Boutique flower shop café known for coffee and stunning floral design."},
	{SiteName: "Padova Italian Cuisine", Category: "Restaurant", Description: "Italian-Jordanian fusion restaurant with cozy ambiance in Amman."},
	{SiteName: "ALMOND COFFEE HOUSE - 8th circle", Category: "Café", Description: "Elegant café with artisanal pastries and a minimalist design."},
	{SiteName: "The Duke's Diwan", Category: "Cultural Spot", Description: "1920s historic house in Amman preserved as a cultural experience."},
	{SiteName: "Beit Sitti", Category: "Cultural Experience", Description: "Cooking school offering traditional Jordanian meals in a family setting."},
	{SiteName: "Wild Jordan Center", Category: "Eco Center", Description: "Eco café/shop with views of Amman, supporting local nature reserves."},
	{SiteName: "Dar Al-Anda Art Gallery", Category: "Art Gallery", Description: "Gallery in Jabal Lweibdeh showcasing Middle Eastern contemporary art."},
	{SiteName: "Jadal for Knowledge & Culture", Category: "Community Space", Description: "Community space for music, talks, and social change in Amman."},
	{SiteName: "Mlabbas - T-shirts & Gifts", Category: "Shopping", Description: "Concept store in Amman with pop-culture-inspired clothing and gifts."},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	db := infra.InitDatabase()
	defer infra.CloseDatabase(db)

	repo := repositories.NewSiteRepository(db)
	ctx := context.Background()

	if err := repo.ClearAll(ctx); err != nil {
		log.Fatalf("Failed to clear sites table: %v", err)
	}

	for i := range lesserKnownSites {
		site := lesserKnownSites[i]
		if _, err := repo.Create(ctx, &site); err != nil {
			log.Printf("%s: %v", site.SiteName, err)
			continue
		}
		log.Printf("%s: seeded", site.SiteName)
	}
}
