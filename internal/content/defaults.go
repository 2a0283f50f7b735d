package content

var (
	AboutMe = `Soy un desarrollador frontend apasionado por crear experiencias web innovadoras y atractivas.
Mi enfoque se centra en la intersección entre **diseño y tecnología**, buscando siempre nuevas formas
de mejorar la interacción del usuario con la web.`

	ParkingDescription = `Este es el front-end del proyecto Estacionamiento Privado, una aplicación web desarrollada
en React que permite a los usuarios gestionar el acceso y disponibilidad de un estacionamiento privado.
El diseño es moderno y responsivo, utilizando Tailwind CSS para los estilos.`

	NubaDescription = `Nuba es una página web dedicada a la planificación y organización de viajes personalizados
de lujo. Su principal objetivo es crear experiencias únicas para sus clientes, enfocándose en ofrecer
itinerarios exclusivos diseñados a medida.`

	WallockDescription = `Wallock es una aplicación de administración de contraseñas basada en la web, diseñada
para almacenar y organizar credenciales de manera segura.`
)

// Default returns the built-in page content. Each call returns a fresh copy.
func Default() *Content {
	return &Content{
		Profile: Profile{
			Title:       "Portfolio de Nico",
			Description: "Frontend Developer",
			Lang:        "es",
			Greeting:    "Hola, soy Nico",
			Role:        "Frontend Developer",
			About:       AboutMe,
			ProfileURL:  "https://github.com/Nicodeveloper97",

			AboutHeading:      "Sobre Mí",
			ExperienceHeading: "Experiencia",
			ProjectsHeading:   "Proyectos Destacados",
			TechHeading:       "Tecnologías:",
			ViewProject:       "Ver Proyecto",
			ContactHeading:    "¿Listo para empezar?",
			ContactLead:       "Si quieres llevar tu proyecto al siguiente nivel, no dudes en",
			ContactHighlight:  "contactarme",
			ContactTail:       ". Estoy aquí para ayudarte a hacer tus ideas realidad.",
		},
		Experience: Experience{
			Title:       "Freelancer en plataformas",
			Description: "Ofrezco servicios especializados en desarrollo frontend, enfocándome en crear soluciones web de alta calidad y rendimiento.",
			Services: []string{
				"Desarrollo de componentes personalizados",
				"Integración eficiente de APIs",
				"Creación de interfaces responsivas",
				"Optimización de código para maximizar el rendimiento",
				"Desarrollo de aplicaciones de una sola página (SPAs) con React",
				"Migraciones a React",
				"Soluciones avanzadas para mejorar la experiencia y funcionalidad de proyectos web",
			},
		},
		Projects: []Project{
			{
				ID:           "estacionamiento",
				Name:         "Gestión de estacionamiento",
				Image:        "/images/Parksmart.png",
				URL:          "https://estacionamientopriv.netlify.app/",
				Description:  ParkingDescription,
				Technologies: []string{"ReactJS", "Tailwind CSS", "NodeJS", "JavaScript"},
			},
			{
				ID:           "nuba",
				Name:         "Nuba",
				Image:        "/images/nuba.png",
				URL:          "https://nuba.com/",
				Description:  NubaDescription,
				Technologies: []string{"HTML", "CSS", "JavaScript", "ReactJS"},
			},
			{
				ID:           "wallock",
				Name:         "Wallock",
				Image:        "/images/wallock.png",
				URL:          "https://wallock.netlify.app/",
				Description:  WallockDescription,
				Technologies: []string{"ReactJS", "Tailwind CSS", "Firebase"},
			},
		},
		Contacts: []ContactLink{
			{
				Href:        "mailto:nicoiglesiasdeveloper@gmail.com",
				Icon:        "mail",
				Label:       "Email",
				Description: "Envíame un correo y discutamos tus ideas.",
			},
			{
				Href:        "https://www.linkedin.com/in/nicolasiglesias97",
				Icon:        "linkedin",
				Label:       "LinkedIn",
				Description: "Conecta conmigo y explora mi experiencia profesional.",
			},
			{
				Href:        "https://wa.me/542804334435",
				Icon:        "phone",
				Label:       "WhatsApp",
				Description: "Contáctame rápidamente a través de WhatsApp.",
			},
		},
	}
}
