package content

var navItems = []NavItem{
	{Anchor: AnchorHero, Label: "Главная"},
	{Anchor: AnchorAbout, Label: "О нас"},
	{Anchor: AnchorServices, Label: "Услуги"},
	{Anchor: AnchorTeam, Label: "Команда"},
	{Anchor: AnchorContact, Label: "Контакты"},
}

var stats = []Stat{
	{Value: "500+", Label: "Завершённых проектов"},
	{Value: "15+", Label: "Лет на рынке"},
	{Value: "98%", Label: "Довольных клиентов"},
}

var services = []Service{
	{
		Icon:        "TrendingUp",
		Title:       "Бизнес-консалтинг",
		Description: "Комплексный анализ и стратегическое планирование для развития вашего бизнеса",
	},
	{
		Icon:        "Users",
		Title:       "Управление персоналом",
		Description: "Оптимизация HR-процессов и построение эффективной команды",
	},
	{
		Icon:        "BarChart3",
		Title:       "Финансовый анализ",
		Description: "Аудит и планирование финансовых потоков компании",
	},
	{
		Icon:        "Target",
		Title:       "Маркетинговая стратегия",
		Description: "Разработка и внедрение маркетинговых решений",
	},
	{
		Icon:        "Lightbulb",
		Title:       "Инновации и развитие",
		Description: "Внедрение современных технологий и процессов",
	},
	{
		Icon:        "Shield",
		Title:       "Юридическая поддержка",
		Description: "Правовое сопровождение деятельности компании",
	},
}

var team = []Member{
	{Name: "Алексей Петров", Role: "Генеральный директор", Photo: "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex"},
	{Name: "Мария Иванова", Role: "Финансовый директор", Photo: "https://api.dicebear.com/7.x/avataaars/svg?seed=Maria"},
	{Name: "Дмитрий Смирнов", Role: "Директор по развитию", Photo: "https://api.dicebear.com/7.x/avataaars/svg?seed=Dmitry"},
	{Name: "Елена Козлова", Role: "HR-директор", Photo: "https://api.dicebear.com/7.x/avataaars/svg?seed=Elena"},
}

var contactCards = []ContactCard{
	{Icon: "MapPin", Title: "Адрес", Lines: []string{"г. Москва, Пресненская наб., 12"}},
	{Icon: "Phone", Title: "Телефон", Lines: []string{"+7 (495) 123-45-67"}},
	{Icon: "Mail", Title: "Email", Lines: []string{"info@bizconsult.ru"}},
	{Icon: "Clock", Title: "Режим работы", Lines: []string{"Пн-Пт: 9:00 - 18:00", "Сб-Вс: Выходной"}},
}

var socials = []Social{
	{Icon: "Linkedin", Href: "#"},
	{Icon: "Facebook", Href: "#"},
	{Icon: "Twitter", Href: "#"},
	{Icon: "Instagram", Href: "#"},
}

var about = []string{
	"BizConsult — это команда профессионалов с многолетним опытом в области бизнес-консалтинга. " +
		"Мы помогаем компаниям оптимизировать процессы, увеличивать прибыль и достигать стратегических целей.",
	"Наша миссия — создавать устойчивую ценность для бизнеса через инновационные решения " +
		"и глубокую экспертизу в различных отраслях экономики.",
}

// ContactButton is the header call to action.
const ContactButton = "Связаться"

// NavItems returns the header navigation links.
func NavItems() []NavItem {
	return append([]NavItem(nil), navItems...)
}

// Stats returns the statistics band.
func Stats() []Stat {
	return append([]Stat(nil), stats...)
}

// Services returns the services grid.
func Services() []Service {
	return append([]Service(nil), services...)
}

// Team returns the team roster.
func Team() []Member {
	return append([]Member(nil), team...)
}

// ContactCards returns the cards shown next to the form.
func ContactCards() []ContactCard {
	out := make([]ContactCard, len(contactCards))
	for i, c := range contactCards {
		c.Lines = append([]string(nil), c.Lines...)
		out[i] = c
	}
	return out
}

// Socials returns the footer social links.
func Socials() []Social {
	return append([]Social(nil), socials...)
}

// About returns the paragraphs of the about section.
func About() []string {
	return append([]string(nil), about...)
}

// HeroCopy returns the first screen copy.
func HeroCopy() Hero {
	return Hero{
		Headline:     "Профессиональные решения для вашего бизнеса",
		Lead:         "Помогаем компаниям достигать амбициозных целей через стратегический консалтинг и экспертную поддержку",
		PrimaryCTA:   "Наши услуги",
		SecondaryCTA: "Консультация",
		ImageURL:     "https://cdn.poehali.dev/projects/f1f99d1a-7f73-4e2a-b3f1-408c215a8919/files/7da409c5-5d12-45be-a6f3-86d253aa1897.jpg",
		ImageAlt:     "Офис",
	}
}

// Sections returns the heading of every titled section.
func Sections() map[Anchor]Section {
	return map[Anchor]Section{
		AnchorAbout:    {Title: "О нашей компании"},
		AnchorServices: {Title: "Наши услуги", Subtitle: "Комплексные решения для развития вашего бизнеса"},
		AnchorTeam:     {Title: "Наша команда", Subtitle: "Эксперты с многолетним опытом"},
		AnchorContact:  {Title: "Свяжитесь с нами", Subtitle: "Оставьте заявку, и мы свяжемся с вами в ближайшее время"},
	}
}

// ContactForm returns the copy around the contact form.
func ContactForm() FormCopy {
	return FormCopy{
		Title:        "Контактная форма",
		NameLabel:    "Имя *",
		EmailLabel:   "Email *",
		PhoneLabel:   "Телефон *",
		MessageLabel: "Сообщение *",
		Submit:       "Отправить заявку",
	}
}

// FooterCopy returns the footer text.
func FooterCopy() Footer {
	return Footer{
		Tagline:   "Профессиональные бизнес-решения для вашего успеха",
		Copyright: "© 2025 BizConsult. Все права защищены.",
	}
}
