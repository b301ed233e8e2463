// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locale

// builtin holds the shipped localization tables. English doubles as the
// fallback for every other language.
var builtin = map[string]Table{
	"en": {
		UserHeader:                "## User Prompt 👤",
		ModelHeader:               "## Model Response 🤖",
		ThoughtBlockTemplate:      "> [!bug]- Model Thoughts 🧠\n> {thought_text}",
		SystemInstructionHeader:   "System Instruction ⚙️",
		SystemInstructionTemplate: "> [!note]- {header}\n> {text}",
		MetadataTable: MetadataLabels{
			HeaderParameter: "Parameter",
			HeaderValue:     "Value",
			Model:           "**Model**",
			Temperature:     "**Temperature**",
			TopP:            "**Top-P**",
			TopK:            "**Top-K**",
			WebSearch:       "**Web Search**",
			SearchEnabled:   "Enabled",
			SearchDisabled:  "Disabled",
		},
		Grounding: GroundingLabels{
			SpoilerHeader:     "Sources Used by the Model ℹ️",
			QueriesHeader:     "**Search Queries:**",
			SourcesHeader:     "**Sources:**",
			SourcePlaceholder: "Source",
		},
		FrontmatterTemplate: "---\n" +
			"title: \"{title}\"\n" +
			"aliases:\n" +
			"  - \"{title}\"\n" +
			"para: resource\n" +
			"type: llm-log\n" +
			"kind: google-ai-studio\n" +
			"tags: \n" +
			"status: archived\n" +
			"cdate: {cdate}\n" +
			"mdate: {mdate}\n" +
			"---",
	},
	"ru": {
		UserHeader:                "## Запрос пользователя 👤",
		ModelHeader:               "## Ответ модели 🤖",
		ThoughtBlockTemplate:      "> [!bug]- Размышления модели 🧠\n> {thought_text}",
		SystemInstructionHeader:   "Системная инструкция ⚙️",
		SystemInstructionTemplate: "> [!note]- {header}\n> {text}",
		MetadataTable: MetadataLabels{
			HeaderParameter: "Настройка",
			HeaderValue:     "Значение",
			Model:           "**Модель**",
			Temperature:     "**Температура**",
			TopP:            "**Top-P**",
			TopK:            "**Top-K**",
			WebSearch:       "**Поиск в Google**",
			SearchEnabled:   "Включен",
			SearchDisabled:  "Отключен",
		},
		Grounding: GroundingLabels{
			SpoilerHeader:     "Источники, использованные моделью ℹ️",
			QueriesHeader:     "**Поисковые запросы:**",
			SourcesHeader:     "**Источники:**",
			SourcePlaceholder: "Источник",
		},
		FrontmatterTemplate: "---\n" +
			"title: \"{title}\"\n" +
			"aliases:\n" +
			"  - \"{title}\"\n" +
			"para: ресурс\n" +
			"type: llm-лог\n" +
			"kind: google-ai-studio\n" +
			"tags: \n" +
			"status: архивировано\n" +
			"cdate: {cdate}\n" +
			"mdate: {mdate}\n" +
			"---",
	},
}
