package main

import (
	"fmt"
	"log"

	"github.com/devmart/internal/config"
	"github.com/devmart/internal/db"
	"github.com/devmart/internal/service"
	"github.com/joho/godotenv"
)

// 首页种子数据生成器，内容取自 Devmart 线上首页。
func main() {
	_ = godotenv.Load()

	// 初始化数据库
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	// 幂等检查：首页已存在则跳过
	var existing db.Page
	if err := db.DB.Where("slug = ?", "home").First(&existing).Error; err == nil {
		fmt.Println("首页已存在，跳过创建")
		return
	}

	fmt.Println("开始生成首页...")

	page := db.Page{
		Title:           "Home",
		Slug:            "home",
		MetaDescription: "Welcome to Devmart - A creative agency bringing your vision to life",
		MetaKeywords:    "creative agency, design, development, branding",
		SEOImage:        "/images/creative-agency/hero_video_bg_1.jpeg",
		Layout:          "Layout2",
		Status:          db.PageStatusPublished,
	}
	if err := db.DB.Create(&page).Error; err != nil {
		log.Fatal("创建首页失败:", err)
	}

	for index, section := range homepageSections() {
		section.PageID = page.ID
		section.OrderIndex = index + 1
		section.IsActive = true
		section.HasContainer = true
		section.SpacingAfterLg = service.DefaultSpacingAfterLg
		section.SpacingAfterMd = service.DefaultSpacingAfterMd
		if err := db.DB.Create(&section).Error; err != nil {
			log.Fatalf("创建区块 %s 失败: %v", section.BlockType, err)
		}
	}

	fmt.Println("首页生成完成！")
	fmt.Println("地址: /home")
	fmt.Println("区块数量: 11")
}

func homepageSections() []db.PageSection {
	return []db.PageSection{
		{
			BlockType: "Hero1_CreativeAgency",
			BlockProps: db.PropsMap{
				"title": []interface{}{
					"London Based Creative Agency",
					"25+ Years of Experience",
					"30+ Worldwide Partnership",
					"Take World-class Service",
				},
				"subtitle": "Craft Distinct Brand Image with Expert Guidance & Fresh Approach.",
				"videoSrc": "https://www.youtube.com/embed/VcaAVWtP48A",
				"bgUrl":    "/images/creative-agency/hero_video_bg_1.jpeg",
			},
		},
		{
			BlockType: "Stats1_FunFact",
			BlockProps: db.PropsMap{
				"data": []interface{}{
					map[string]interface{}{"title": "Happy Customers", "number": "22k"},
					map[string]interface{}{"title": "Work's Completed", "number": "15k"},
					map[string]interface{}{"title": "Skilled Team Members", "number": "121"},
					map[string]interface{}{"title": "Most Valuable Awards", "number": "15"},
				},
			},
		},
		{
			BlockType: "About1_Standard",
			BlockProps: db.PropsMap{
				"thumbnail": "/images/creative-agency/about_1.jpeg",
				"uperTitle": "Who We Are",
				"title":     "Full-stack creatives and designing agency",
				"subTitle":  "Our team, specializing in strategic digital marketing, partners with the world's leading brands. Breaking from the norm, we push boundaries and merge imaginative thinking, consumer behavior, and data-driven design with advanced technology to deliver unparalleled brand experiences.",
				"featureList": []interface{}{
					"Designing content with AI power",
					"Trending marketing tools involve",
					"Powerful market strategy use",
				},
				"btnText": "Learn More",
				"btnUrl":  "/about",
			},
		},
		{
			BlockType: "WhyChoose1_Standard",
			BlockProps: db.PropsMap{
				"sectionTitle":    "We have depth of market knowledge",
				"sectionSubTitle": "Why Choose Us",
				"whyChoseFeatureData": []interface{}{
					map[string]interface{}{
						"title":   "Talented, professional & expert team",
						"content": "Our team, specializing in strategic digital marketing, are not partners with the world is leading brands. Breaking from the norm, we push boundaries and merge.",
					},
					map[string]interface{}{
						"title":   "Highly accuracy AI based system",
						"content": "Our team, specializing in strategic digital marketing, are not partners with the world is leading brands. Breaking from the norm, we push boundaries and merge.",
					},
					map[string]interface{}{
						"title":   "Secret successful brand strategy formula",
						"content": "Our team, specializing in strategic digital marketing, are not partners with the world is leading brands. Breaking from the norm, we push boundaries and merge.",
					},
				},
				"thumbnailSrc": "/images/creative-agency/why_choose_us_img_3.jpeg",
			},
		},
		{
			BlockType: "Services1_Grid",
			BlockProps: db.PropsMap{
				"sectionTitle":    "Our core services",
				"sectionSubTitle": "Services",
				"data": []interface{}{
					map[string]interface{}{
						"title":    "WP Development",
						"subtitle": "Sed ut perspiciatis unde omnis iste natus error sit voluptatem accusantium lorema doloremque laudantium, totam rem aperiam, eaque ipsa quae.",
						"imgUrl":   "/images/creative-agency/service_7.jpeg",
						"href":     "/service/service-details",
					},
					map[string]interface{}{
						"title":    "UI/UX Design",
						"subtitle": "Sed ut perspiciatis unde omnis iste natus error sit voluptatem accusantium lorema doloremque laudantium, totam rem aperiam, eaque ipsa quae.",
						"imgUrl":   "/images/creative-agency/service_8.jpeg",
						"href":     "/service/service-details",
					},
					map[string]interface{}{
						"title":    "Branding",
						"subtitle": "Sed ut perspiciatis unde omnis iste natus error sit voluptatem accusantium lorema doloremque laudantium, totam rem aperiam, eaque ipsa quae.",
						"imgUrl":   "/images/creative-agency/service_9.jpeg",
						"href":     "/service/service-details",
					},
					map[string]interface{}{
						"title":    "Social Ad Campaign",
						"subtitle": "Sed ut perspiciatis unde omnis iste natus error sit voluptatem accusantium lorema doloremque laudantium, totam rem aperiam, eaque ipsa quae.",
						"imgUrl":   "/images/creative-agency/service_10.jpeg",
						"href":     "/service/service-details",
					},
				},
			},
		},
		{
			BlockType: "Portfolio1_Grid",
			BlockProps: db.PropsMap{
				"sectionTitle":    "Some featured work",
				"sectionSubTitle": "Portfolio",
				"data": []interface{}{
					map[string]interface{}{
						"href":    "/portfolio/portfolio-details",
						"imgUrl":  "/images/creative-agency/portfolio_1.jpeg",
						"title":   "Awesome colorful artwork",
						"btnText": "See Project",
					},
					map[string]interface{}{
						"href":    "/portfolio/portfolio-details",
						"imgUrl":  "/images/creative-agency/portfolio_2.jpeg",
						"title":   "Admin dashboard UI design",
						"btnText": "See Project",
					},
					map[string]interface{}{
						"href":    "/portfolio/portfolio-details",
						"imgUrl":  "/images/creative-agency/portfolio_3.jpeg",
						"title":   "Product designing with brand",
						"btnText": "See Project",
					},
					map[string]interface{}{
						"href":    "/portfolio/portfolio-details",
						"imgUrl":  "/images/creative-agency/portfolio_4.jpeg",
						"title":   "Kids education website design",
						"btnText": "See Project",
					},
				},
				"showButton": true,
				"buttonText": "See All Project",
				"buttonUrl":  "/portfolio",
			},
		},
		{
			BlockType: "Awards1_Standard",
			BlockProps: db.PropsMap{
				"sectionTitle":    "Our prize achievement",
				"sectionSubTitle": "Awards",
				"data": []interface{}{
					map[string]interface{}{
						"brand":       "Behance",
						"title":       "UI/UX design of the month",
						"subTitle":    "Accusamus et iusto odio dignissimos ducimus qui blanditiis fedarals praesentium voluptatum deleniti atque corrupti quos dolores",
						"date":        "December 12, 2023",
						"awardImgUrl": "/images/creative-agency/award_img_1.svg",
					},
					map[string]interface{}{
						"brand":       "Awwwards",
						"title":       "CSS awards design",
						"subTitle":    "Accusamus et iusto odio dignissimos ducimus qui blanditiis fedarals praesentium voluptatum deleniti atque corrupti quos dolores",
						"date":        "November 25, 2023",
						"awardImgUrl": "/images/creative-agency/award_img_2.svg",
					},
					map[string]interface{}{
						"brand":       "Dribbble",
						"title":       "Web design of the year",
						"subTitle":    "Accusamus et iusto odio dignissimos ducimus qui blanditiis fedarals praesentium voluptatum deleniti atque corrupti quos dolores",
						"date":        "October 13, 2023",
						"awardImgUrl": "/images/creative-agency/award_img_3.svg",
					},
				},
			},
		},
		{
			BlockType: "Testimonials1_Layered",
			BlockProps: db.PropsMap{
				"layeredImages": []interface{}{
					"/images/creative-agency/layer_img_1.jpeg",
					"/images/creative-agency/layer_img_2.jpeg",
					"/images/creative-agency/layer_img_3.jpeg",
					"/images/creative-agency/layer_img_4.jpeg",
					"/images/creative-agency/layer_img_5.jpeg",
				},
				"data": []interface{}{
					map[string]interface{}{
						"imgUrl":      "/images/creative-agency/avatar_1.jpeg",
						"rating":      4.5,
						"review":      "I recently had the pleasure of working with Zivan, and I must say, their creativity and professionalism truly exceeded my expectations. They took the time to understand our vision and delivered exceptional results. Highly recommend!",
						"name":        "Cristian Torres",
						"designation": "Product Manager, Apple Inc.",
					},
					map[string]interface{}{
						"imgUrl":      "/images/creative-agency/avatar_2.jpeg",
						"rating":      5,
						"review":      "Working with this agency was a game-changer for our business. Their innovative approach and attention to detail helped us achieve remarkable results. The team was responsive and dedicated throughout the entire process.",
						"name":        "Sarah Johnson",
						"designation": "CEO, Tech Innovations",
					},
				},
			},
		},
		{
			BlockType: "CTA1_ImageBackground",
			BlockProps: db.PropsMap{
				"title":   "Is there a specific project or goal that you have in mind?",
				"btnText": "Contact Us",
				"btnUrl":  "/contact",
				"bgUrl":   "/images/creative-agency/cta_bg.jpeg",
			},
		},
		{
			BlockType: "Blog1_Carousel",
			BlockProps: db.PropsMap{
				"sectionTitle":    "Some recent news",
				"sectionSubTitle": "Our Blog",
				"data": []interface{}{
					map[string]interface{}{
						"thumbnailSrc": "/images/creative-agency/post_1.jpeg",
						"title":        "Google's next billion users will be from Africa",
						"date":         "05 Jun 2023",
						"url":          "/blog/blog-details",
					},
					map[string]interface{}{
						"thumbnailSrc": "/images/creative-agency/post_2.jpeg",
						"title":        "Artistic mind will be great for creation anything",
						"date":         "22 Apr 2023",
						"url":          "/blog/blog-details",
					},
					map[string]interface{}{
						"thumbnailSrc": "/images/creative-agency/post_3.jpeg",
						"title":        "AI will take over all job for human within few years",
						"date":         "13 May 2023",
						"url":          "/blog/blog-details",
					},
					map[string]interface{}{
						"thumbnailSrc": "/images/creative-agency/post_4.jpeg",
						"title":        "Your agency need to replace some artistic mind people",
						"date":         "15 Mar 2023",
						"url":          "/blog/blog-details",
					},
				},
			},
		},
		{
			BlockType: "FAQ1_Accordion",
			BlockProps: db.PropsMap{
				"sectionTitle":    "Frequently asked question",
				"sectionSubTitle": "FAQs",
				"variant":         "cs_type_1",
				"data": []interface{}{
					map[string]interface{}{
						"question": "What services does your creative agency offer?",
						"answer":   "We offer a comprehensive range of creative services including branding, web design, digital marketing, content creation, and strategic consulting. Our team specializes in crafting unique solutions tailored to your business needs.",
					},
					map[string]interface{}{
						"question": "How long does a typical project take?",
						"answer":   "Project timelines vary depending on scope and complexity. A typical branding project takes 4-6 weeks, while web development can range from 6-12 weeks. We provide detailed timelines during our initial consultation.",
					},
					map[string]interface{}{
						"question": "What is your pricing structure?",
						"answer":   "Our pricing is project-based and depends on the scope of work. We offer flexible packages and custom solutions to fit different budgets. Contact us for a personalized quote based on your specific requirements.",
					},
					map[string]interface{}{
						"question": "Do you work with international clients?",
						"answer":   "Yes! We work with clients worldwide and have experience collaborating across different time zones. Our digital workflow allows us to seamlessly work with teams anywhere in the world.",
					},
					map[string]interface{}{
						"question": "What makes your agency different?",
						"answer":   "We combine strategic thinking with creative excellence. Our team brings together diverse expertise in design, technology, and marketing. We focus on delivering measurable results while creating memorable brand experiences.",
					},
				},
			},
		},
	}
}
