// seed.go - Populates the database with the initial climate change content

package database

import (
	"log"
	"time"

	"go-climate-backend/models"

	"gorm.io/gorm"
)

// Seed inserts the fixed starter articles if the articles table is empty.
// Running it again against a populated database is a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Article{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	articles := seedArticles()
	now := time.Now().UTC()
	for i := range articles {
		articles[i].DateCreated = now
	}

	if err := db.Create(&articles).Error; err != nil {
		return err
	}

	log.Println("Database populated with initial climate change content")
	return nil
}

func seedArticles() []models.Article {
	return []models.Article{
		{
			Title:    "Understanding Global Warming",
			Subtitle: "The science behind rising global temperatures and their impact on our planet",
			Content: `Global warming refers to the long-term increase in Earth's average surface temperature due to greenhouse gas emissions from human activities. Since the late 19th century, Earth's average temperature has risen by about 1.1°C (2°F).

The primary cause is the burning of fossil fuels (coal, oil, and natural gas), which releases carbon dioxide and other greenhouse gases into the atmosphere. These gases trap heat from the sun, creating a 'greenhouse effect.'

Key impacts include:
• Rising sea levels due to thermal expansion and melting ice
• More frequent and intense extreme weather events
• Ocean acidification affecting marine ecosystems
• Shifts in precipitation patterns
• Threats to biodiversity and food security

The scientific consensus is clear: human activities are the dominant cause of observed warming since the mid-20th century. Immediate action is needed to reduce emissions and limit global temperature rise to 1.5°C above pre-industrial levels.`,
			Category: "Science",
			Author:   "Climate Research Team",
		},
		{
			Title:    "Renewable Energy Solutions",
			Subtitle: "How clean energy technologies can help combat climate change",
			Content: `Renewable energy sources offer a sustainable path forward in the fight against climate change. These technologies harness natural processes that are constantly replenished, providing clean alternatives to fossil fuels.

Solar Power:
• Photovoltaic cells convert sunlight directly into electricity
• Costs have dropped 85% since 2010
• Can be deployed at utility scale or distributed on rooftops

Wind Energy:
• Onshore and offshore wind farms generate clean electricity
• Technology improvements have increased efficiency and reduced costs
• Provides reliable power when combined with energy storage

Hydropower:
• Uses flowing water to generate electricity
• Provides consistent, dispatchable power
• Can be combined with pumped storage for grid stability

Other promising technologies include geothermal energy, biomass, and emerging solutions like tidal and wave power. The key is creating an integrated energy system that combines multiple renewable sources with smart grid technology and energy storage.

Investment in renewable energy has grown dramatically, with global capacity increasing by 45% in 2020 alone. This transition not only reduces emissions but also creates jobs, improves air quality, and enhances energy security.`,
			Category: "Solutions",
			Author:   "Energy Innovation Team",
		},
		{
			Title:    "Climate Change and Extreme Weather",
			Subtitle: "How global warming is intensifying storms, droughts, and heatwaves",
			Content: `Climate change is making extreme weather events more frequent, intense, and destructive. As global temperatures rise, the atmosphere can hold more moisture, leading to heavier rainfall and more powerful storms.

Hurricanes and Typhoons:
• Warmer ocean temperatures fuel more intense storms
• Rising sea levels increase storm surge damage
• Storms are moving slower, causing more prolonged impacts

Heatwaves:
• Record-breaking temperatures are becoming more common
• Urban heat islands amplify the effects
• Heat-related deaths are increasing globally

Droughts and Wildfires:
• Higher temperatures increase evaporation rates
• Drier conditions create fuel for wildfires
• Water scarcity affects agriculture and communities

Flooding:
• Heavier rainfall overwhelms drainage systems
• Sea level rise increases coastal flooding risk
• Flash floods are becoming more common

These extreme events have cascading effects on:
• Agriculture and food security
• Infrastructure and transportation
• Public health and safety
• Economic stability
• Ecosystem health

Adaptation measures include improved early warning systems, resilient infrastructure design, and community preparedness programs. However, reducing greenhouse gas emissions remains the most effective long-term solution.`,
			Category: "Impact",
			Author:   "Climate Impact Research",
		},
		{
			Title:    "Individual Actions for Climate Change",
			Subtitle: "How you can make a difference in the fight against global warming",
			Content: `While systemic change is essential, individual actions collectively make a significant impact. Here are practical steps you can take to reduce your carbon footprint:

Transportation:
• Use public transit, biking, or walking when possible
• Choose electric or hybrid vehicles
• Combine errands to reduce trips
• Consider carpooling or ride-sharing

Energy at Home:
• Switch to LED light bulbs
• Use programmable thermostats
• Insulate your home properly
• Choose energy-efficient appliances
• Consider solar panels or renewable energy plans

Diet and Food:
• Reduce meat consumption, especially beef
• Buy local and seasonal produce
• Minimize food waste
• Choose organic when possible
• Grow your own vegetables

Consumption Habits:
• Buy less, choose quality over quantity
• Repair items instead of replacing them
• Choose products with minimal packaging
• Support companies with sustainable practices
• Reduce, reuse, and recycle

Advocacy:
• Vote for climate-conscious leaders
• Support environmental organizations
• Educate others about climate change
• Participate in community climate initiatives
• Use your voice on social media

Remember: Small actions add up. The most important step is to start somewhere and build sustainable habits over time.`,
			Category: "Solutions",
			Author:   "Climate Action Team",
		},
	}
}
