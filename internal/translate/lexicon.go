package translate

// Built-in lexicons for the mock models. Phrase entries cover the
// assistive phrases the signal decoder produces plus the transcription
// fallback; word entries catch the rest of the demo vocabulary.
// Unknown text passes through untouched.
var lexicons = map[string]map[string]string{
	"Helsinki-NLP/opus-mt-en-es": {
		"i need help":                        "Necesito ayuda",
		"i am hungry":                        "Tengo hambre",
		"i am thirsty":                       "Tengo sed",
		"i am in pain":                       "Tengo dolor",
		"i need to use the restroom":         "Necesito usar el baño",
		"yes":                                "Sí",
		"no":                                 "No",
		"please":                             "Por favor",
		"thank you":                          "Gracias",
		"hello":                              "Hola",
		"goodbye":                            "Adiós",
		"i love you":                         "Te quiero",
		"i am tired":                         "Estoy cansado",
		"i am happy":                         "Estoy feliz",
		"i am sad":                           "Estoy triste",
		"i am uncomfortable":                 "Estoy incómodo",
		"i am cold":                          "Tengo frío",
		"i am hot":                           "Tengo calor",
		"i am scared":                        "Tengo miedo",
		"i am confused":                      "Estoy confundido",
		"sorry, i couldn't understand that.": "Lo siento, no pude entender eso.",
		"water":                              "agua",
		"help":                               "ayuda",
		"food":                               "comida",
		"friend":                             "amigo",
		"today":                              "hoy",
	},
	"Helsinki-NLP/opus-mt-es-en": {
		"necesito ayuda":                   "I need help",
		"tengo hambre":                     "I am hungry",
		"tengo sed":                        "I am thirsty",
		"tengo dolor":                      "I am in pain",
		"necesito usar el baño":            "I need to use the restroom",
		"sí":                               "Yes",
		"por favor":                        "Please",
		"gracias":                          "Thank you",
		"hola":                             "Hello",
		"adiós":                            "Goodbye",
		"te quiero":                        "I love you",
		"estoy cansado":                    "I am tired",
		"estoy feliz":                      "I am happy",
		"estoy triste":                     "I am sad",
		"lo siento, no pude entender eso.": "Sorry, I couldn't understand that.",
		"agua":                             "water",
		"ayuda":                            "help",
		"comida":                           "food",
	},
	"Helsinki-NLP/opus-mt-en-fr": {
		"i need help":                        "J'ai besoin d'aide",
		"i am hungry":                        "J'ai faim",
		"i am thirsty":                       "J'ai soif",
		"i am in pain":                       "J'ai mal",
		"yes":                                "Oui",
		"no":                                 "Non",
		"please":                             "S'il vous plaît",
		"thank you":                          "Merci",
		"hello":                              "Bonjour",
		"goodbye":                            "Au revoir",
		"i love you":                         "Je t'aime",
		"i am tired":                         "Je suis fatigué",
		"sorry, i couldn't understand that.": "Désolé, je n'ai pas compris.",
		"water":                              "eau",
		"help":                               "aide",
	},
	"Helsinki-NLP/opus-mt-fr-en": {
		"j'ai besoin d'aide": "I need help",
		"j'ai faim":          "I am hungry",
		"j'ai soif":          "I am thirsty",
		"oui":                "Yes",
		"non":                "No",
		"merci":              "Thank you",
		"bonjour":            "Hello",
		"au revoir":          "Goodbye",
		"je t'aime":          "I love you",
	},
	"Helsinki-NLP/opus-mt-en-de": {
		"i need help": "Ich brauche Hilfe",
		"i am hungry": "Ich habe Hunger",
		"yes":         "Ja",
		"no":          "Nein",
		"please":      "Bitte",
		"thank you":   "Danke",
		"hello":       "Hallo",
		"goodbye":     "Auf Wiedersehen",
		"i love you":  "Ich liebe dich",
	},
	"Helsinki-NLP/opus-mt-de-en": {
		"ich brauche hilfe": "I need help",
		"ich habe hunger":   "I am hungry",
		"ja":                "Yes",
		"nein":              "No",
		"danke":             "Thank you",
		"hallo":             "Hello",
	},
}

// loadLexiconModel is the default model loader. Pairs registered in
// pairModels but without a lexicon get an empty one: the model loads
// and behaves as a passthrough, mirroring an untrained checkpoint.
func loadLexiconModel(name string) (*Model, error) {
	lexicon, ok := lexicons[name]
	if !ok {
		lexicon = map[string]string{}
	}
	return &Model{Name: name, lexicon: lexicon}, nil
}
