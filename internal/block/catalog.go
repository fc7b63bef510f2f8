package block

// catalog 是全部可用区块的静态目录。顺序即后台选择器的展示顺序。
// 新增区块类型需要在这里登记并提供模板文件，属于代码级变更。
var catalog = []Definition{
	{
		Type:         "Hero1_CreativeAgency",
		Name:         "Hero - Creative Agency",
		Category:     "Hero",
		Description:  "Rotating headline hero with background video",
		TemplateFile: "hero1_creative_agency.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"title": []interface{}{
				"London Based Creative Agency",
				"25+ Years of Experience",
				"30+ Worldwide Partnership",
			},
			"subtitle": "Craft Distinct Brand Image with Expert Guidance & Fresh Approach.",
			"videoSrc": "",
			"bgUrl":    "/images/creative-agency/hero_video_bg_1.jpeg",
		},
	},
	{
		Type:         "Hero2_MarketingAgency",
		Name:         "Hero - Marketing Agency",
		Category:     "Hero",
		Description:  "Split hero with supporting image",
		TemplateFile: "hero2_marketing_agency.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"title":    "We grow ambitious brands",
			"subtitle": "Strategy, design and performance marketing under one roof.",
			"btnText":  "Get Started",
			"btnUrl":   "/contact",
			"imgUrl":   "/images/marketing-agency/hero_img.png",
		},
	},
	{
		Type:         "Hero5_TechStartup",
		Name:         "Hero - Tech Startup",
		Category:     "Hero",
		Description:  "Centered hero with dual call to action",
		TemplateFile: "hero5_tech_startup.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"title":         "Ship your next product faster",
			"subtitle":      "From idea to launch with a senior product team.",
			"primaryText":   "Start a Project",
			"primaryUrl":    "/contact",
			"secondaryText": "See Our Work",
			"secondaryUrl":  "/portfolio",
		},
	},
	{
		Type:         "About1_Standard",
		Name:         "About - Standard",
		Category:     "About",
		Description:  "Image beside intro copy with feature list",
		TemplateFile: "about1_standard.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"thumbnail": "/images/creative-agency/about_1.jpeg",
			"uperTitle": "Who We Are",
			"title":     "Full-stack creatives and designing agency",
			"subTitle":  "We merge imaginative thinking, consumer behavior and data-driven design to deliver unparalleled brand experiences.",
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
		Type:         "About3_CTAStyle",
		Name:         "About - CTA Style",
		Category:     "About",
		Description:  "Short about blurb leading into a call to action",
		TemplateFile: "about3_cta_style.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"title":   "A studio obsessed with outcomes",
			"content": "Two decades of brand, product and campaign work for clients on four continents.",
			"btnText": "Work With Us",
			"btnUrl":  "/contact",
		},
	},
	{
		Type:         "Stats1_FunFact",
		Name:         "Stats - Fun Fact",
		Category:     "Stats",
		Description:  "Counter row of key numbers",
		TemplateFile: "stats1_fun_fact.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"data": []interface{}{
				map[string]interface{}{"title": "Happy Customers", "number": "22k"},
				map[string]interface{}{"title": "Work's Completed", "number": "15k"},
				map[string]interface{}{"title": "Skilled Team Members", "number": "121"},
				map[string]interface{}{"title": "Most Valuable Awards", "number": "15"},
			},
		},
	},
	{
		Type:         "Services1_Grid",
		Name:         "Services - Grid",
		Category:     "Services",
		Description:  "Service cards in a grid",
		TemplateFile: "services1_grid.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "Our core services",
			"sectionSubTitle": "Services",
			"data": []interface{}{
				map[string]interface{}{"title": "WP Development", "subtitle": "End-to-end WordPress builds.", "imgUrl": "/images/creative-agency/service_7.jpeg", "href": "/service/wp-development"},
				map[string]interface{}{"title": "UI/UX Design", "subtitle": "Interfaces users love.", "imgUrl": "/images/creative-agency/service_8.jpeg", "href": "/service/ui-ux-design"},
				map[string]interface{}{"title": "Branding", "subtitle": "Identities that stick.", "imgUrl": "/images/creative-agency/service_9.jpeg", "href": "/service/branding"},
			},
		},
	},
	{
		Type:         "Services2_Numbered",
		Name:         "Services - Numbered",
		Category:     "Services",
		Description:  "Numbered list of services",
		TemplateFile: "services2_numbered.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "What we do",
			"sectionSubTitle": "Services",
			"data": []interface{}{
				map[string]interface{}{"title": "Strategy", "subtitle": "Positioning and go-to-market."},
				map[string]interface{}{"title": "Design", "subtitle": "Brand and product design."},
				map[string]interface{}{"title": "Development", "subtitle": "Web and mobile engineering."},
			},
		},
	},
	{
		Type:         "Portfolio1_Grid",
		Name:         "Portfolio - Grid",
		Category:     "Portfolio",
		Description:  "Featured work in a grid",
		TemplateFile: "portfolio1_grid.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "Some featured work",
			"sectionSubTitle": "Portfolio",
			"data": []interface{}{
				map[string]interface{}{"href": "/portfolio/colorful-artwork", "imgUrl": "/images/creative-agency/portfolio_1.jpeg", "title": "Awesome colorful artwork", "btnText": "See Project"},
				map[string]interface{}{"href": "/portfolio/admin-dashboard", "imgUrl": "/images/creative-agency/portfolio_2.jpeg", "title": "Admin dashboard UI design", "btnText": "See Project"},
			},
			"showButton": true,
			"buttonText": "See All Project",
			"buttonUrl":  "/portfolio",
		},
	},
	{
		Type:         "WhyChoose1_Standard",
		Name:         "Why Choose - Standard",
		Category:     "Why Choose",
		Description:  "Accordion of differentiators beside an image",
		TemplateFile: "why_choose1_standard.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "We have depth of market knowledge",
			"sectionSubTitle": "Why Choose Us",
			"whyChoseFeatureData": []interface{}{
				map[string]interface{}{"title": "Talented, professional & expert team", "content": "Senior specialists across strategy, design and engineering."},
				map[string]interface{}{"title": "Secret successful brand strategy formula", "content": "A process sharpened across hundreds of launches."},
			},
			"thumbnailSrc": "/images/creative-agency/why_choose_us_img_3.jpeg",
		},
	},
	{
		Type:         "Awards1_Standard",
		Name:         "Awards - Standard",
		Category:     "Awards",
		Description:  "Award list with brand logos",
		TemplateFile: "awards1_standard.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "Our prize achievement",
			"sectionSubTitle": "Awards",
			"data": []interface{}{
				map[string]interface{}{"brand": "Behance", "title": "UI/UX design of the month", "date": "December 12, 2023", "awardImgUrl": "/images/creative-agency/award_img_1.svg"},
				map[string]interface{}{"brand": "Awwwards", "title": "CSS awards design", "date": "November 25, 2023", "awardImgUrl": "/images/creative-agency/award_img_2.svg"},
			},
		},
	},
	{
		Type:         "Testimonials1_Layered",
		Name:         "Testimonials - Layered",
		Category:     "Testimonials",
		Description:  "Client quotes with layered imagery",
		TemplateFile: "testimonials1_layered.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"data": []interface{}{
				map[string]interface{}{"imgUrl": "/images/creative-agency/avatar_1.jpeg", "rating": 4.5, "review": "Their creativity and professionalism truly exceeded my expectations.", "name": "Cristian Torres", "designation": "Product Manager, Apple Inc."},
			},
		},
	},
	{
		Type:         "CTA1_ImageBackground",
		Name:         "CTA - Image Background",
		Category:     "CTA",
		Description:  "Full-width call to action over an image",
		TemplateFile: "cta1_image_background.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"title":   "Is there a specific project or goal that you have in mind?",
			"btnText": "Contact Us",
			"btnUrl":  "/contact",
			"bgUrl":   "/images/creative-agency/cta_bg.jpeg",
		},
	},
	{
		Type:         "CTA2_Centered",
		Name:         "CTA - Centered",
		Category:     "CTA",
		Description:  "Centered call to action",
		TemplateFile: "cta2_centered.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"title":   "Let's build something together",
			"btnText": "Start a Conversation",
			"btnUrl":  "/contact",
		},
	},
	{
		Type:         "Blog1_Carousel",
		Name:         "Blog - Carousel",
		Category:     "Blog",
		Description:  "Recent posts in a carousel",
		TemplateFile: "blog1_carousel.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "Some recent news",
			"sectionSubTitle": "Our Blog",
			"data": []interface{}{
				map[string]interface{}{"thumbnailSrc": "/images/creative-agency/post_1.jpeg", "title": "Google's next billion users will be from Africa", "date": "05 Jun 2023", "url": "/blog/next-billion-users"},
				map[string]interface{}{"thumbnailSrc": "/images/creative-agency/post_2.jpeg", "title": "Artistic mind will be great for creation anything", "date": "22 Apr 2023", "url": "/blog/artistic-mind"},
			},
		},
	},
	{
		Type:         "Blog2_Grid",
		Name:         "Blog - Grid",
		Category:     "Blog",
		Description:  "Posts in a static grid",
		TemplateFile: "blog2_grid.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "From the journal",
			"sectionSubTitle": "Blog",
			"data":            []interface{}{},
		},
	},
	{
		Type:         "FAQ1_Accordion",
		Name:         "FAQ - Accordion",
		Category:     "FAQ",
		Description:  "Questions and answers in an accordion",
		TemplateFile: "faq1_accordion.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "Frequently asked question",
			"sectionSubTitle": "FAQs",
			"data": []interface{}{
				map[string]interface{}{"question": "What services does your creative agency offer?", "answer": "Branding, web design, digital marketing, content creation and strategic consulting."},
				map[string]interface{}{"question": "How long does a typical project take?", "answer": "A branding project takes 4-6 weeks; web development ranges from 6-12 weeks."},
			},
		},
	},
	{
		Type:         "Features1_IconBox",
		Name:         "Features - Icon Box",
		Category:     "Features",
		Description:  "Feature highlights with icons",
		TemplateFile: "features1_icon_box.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "Why teams pick us",
			"sectionSubTitle": "Features",
			"data": []interface{}{
				map[string]interface{}{"icon": "spark", "title": "Fast turnaround", "content": "Weekly shipping cadence."},
				map[string]interface{}{"icon": "shield", "title": "Senior team", "content": "No hand-offs to juniors."},
			},
		},
	},
	{
		Type:         "Team1_Slider",
		Name:         "Team - Slider",
		Category:     "Team",
		Description:  "Team members in a slider",
		TemplateFile: "team1_slider.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "Meet our experts",
			"sectionSubTitle": "Team",
			"data": []interface{}{
				map[string]interface{}{"name": "Alex Morgan", "designation": "Creative Director", "imgUrl": "/images/creative-agency/team_1.jpeg"},
			},
		},
	},
	{
		Type:         "Pricing1_Table",
		Name:         "Pricing - Table",
		Category:     "Pricing",
		Description:  "Plan comparison table",
		TemplateFile: "pricing1_table.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"sectionTitle":    "Simple pricing",
			"sectionSubTitle": "Pricing",
			"data": []interface{}{
				map[string]interface{}{"title": "Starter", "price": "$990", "period": "per project", "features": []interface{}{"Landing page", "Two revisions"}, "btnText": "Choose Plan", "btnUrl": "/contact"},
				map[string]interface{}{"title": "Growth", "price": "$4900", "period": "per project", "features": []interface{}{"Full site", "Brand kit", "Unlimited revisions"}, "btnText": "Choose Plan", "btnUrl": "/contact"},
			},
		},
	},
	{
		Type:         "Marquee1_Scrolling",
		Name:         "Marquee - Scrolling",
		Category:     "Marquee",
		Description:  "Edge-to-edge scrolling text ribbon",
		TemplateFile: "marquee1_scrolling.html",
		// 滚动条必须通栏展示，由模板自带内层 container，
		// 这是目录里声明的包裹规则而不是渲染器里的特例。
		Wrapping: WrapFullBleed,
		DefaultProps: map[string]interface{}{
			"text":  "Branding - Strategy - Design - Development - Marketing",
			"speed": 40,
		},
	},
	{
		Type:         "Brands1_Standard",
		Name:         "Brands - Standard",
		Category:     "Brands",
		Description:  "Client logo wall",
		TemplateFile: "brands1_standard.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"data": []interface{}{
				map[string]interface{}{"name": "Acme", "logoUrl": "/images/brands/acme.svg"},
				map[string]interface{}{"name": "Globex", "logoUrl": "/images/brands/globex.svg"},
			},
		},
	},
	{
		Type:         "Video1_Modal",
		Name:         "Video - Modal",
		Category:     "Video",
		Description:  "Poster image opening a video embed",
		TemplateFile: "video1_modal.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"posterUrl": "/images/creative-agency/video_bg.jpeg",
			"videoSrc":  "https://www.youtube.com/embed/VcaAVWtP48A",
		},
	},
	{
		Type:         "Content1_Markdown",
		Name:         "Content - Markdown",
		Category:     "Content",
		Description:  "Free-form markdown content",
		TemplateFile: "content1_markdown.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"content": "## About this page\n\nWrite markdown here.",
		},
	},
	{
		Type:         "Contact1_Form",
		Name:         "Contact - Form",
		Category:     "Contact",
		Description:  "Contact form posting to the submissions inbox",
		TemplateFile: "contact1_form.html",
		Wrapping:     WrapDefault,
		DefaultProps: map[string]interface{}{
			"title":    "Tell us about your project",
			"subtitle": "We usually reply within one business day.",
			"btnText":  "Send Message",
		},
	},
}

// Catalog 返回内建目录的副本。
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}
