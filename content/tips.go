package content

import "fmt"

// developmentTips maps a full month of age to a short note about what is
// typical at that age and what to try. Index is months, 0 is the newborn
// period.
var developmentTips = []string{
	"Новорожденный спит большую часть суток и ест каждые 2-3 часа. " +
		"Выкладывайте на животик на 1-2 минуты перед кормлением, разговаривайте с малышом.",
	"Малыш начинает фокусировать взгляд и следить за лицом. " +
		"Показывайте контрастные картинки на расстоянии 20-30 см, чаще носите на руках.",
	"Появляется первая осознанная улыбка и гуление. " +
		"Отвечайте на звуки малыша, пойте песенки: это основа развития речи.",
	"Ребенок уверенно держит голову и опирается на предплечья лежа на животе. " +
		"Давайте в ручку легкие погремушки, делайте гимнастику.",
	"Малыш переворачивается со спины на живот и тянет все в рот. " +
		"Уберите мелкие предметы, предложите прорезыватели разной текстуры.",
	"Ребенок узнает близких и может настороженно относиться к чужим. " +
		"Играйте в «ку-ку», называйте предметы, которые заинтересовали малыша.",
	"Пора первого прикорма: овощные пюре или каши по рекомендации педиатра. " +
		"Многие дети начинают сидеть с поддержкой.",
	"Малыш сидит без поддержки, некоторые начинают ползать. " +
		"Обустройте безопасное пространство на полу для движения.",
	"Активное ползание и первые попытки вставать у опоры. " +
		"Закройте розетки и закрепите мебель, за которую малыш подтягивается.",
	"Появляются указательный жест и лепетные слова «ма-ма», «ба-ба». " +
		"Читайте короткие книжки с крупными картинками каждый день.",
	"Ребенок ходит у опоры или за ручки, понимает простые просьбы. " +
		"Играйте в «дай-возьми», собирайте пирамидку вместе.",
	"Многие дети делают первые самостоятельные шаги. " +
		"Не торопите: возраст первых шагов от 9 до 18 месяцев - норма.",
	"Год! Малыш ходит, говорит несколько слов, ест кусочками. " +
		"Поддерживайте самостоятельность: ложка, питьевой стакан, простые просьбы.",
}

// DevelopmentTip returns the tip for the given age in months. Ages past the
// table get the closing entry.
func DevelopmentTip(ageMonths int) string {
	if ageMonths < 0 {
		ageMonths = 0
	}
	if ageMonths >= len(developmentTips) {
		return developmentTips[len(developmentTips)-1]
	}
	return developmentTips[ageMonths]
}

// RenderDevelopmentTip formats the tip with its age header.
func RenderDevelopmentTip(ageMonths int) string {
	header := fmt.Sprintf("📚 Советы для возраста %d мес.", ageMonths)
	if ageMonths == 0 {
		header = "📚 Советы для новорожденного"
	}
	return header + "\n\n" + DevelopmentTip(ageMonths)
}
