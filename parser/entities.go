package parser

// namedReferences maps the text after an ampersand to its replacement.
// Keys that lack the trailing semicolon are the legacy forms the
// matcher may still resolve; the semicolon form is always preferred
// because matching is longest-prefix. This is the commonly used subset
// of the full reference table, enough to drive the greedy matcher.
var namedReferences = map[string]string{
	"AElig;": "Æ", "AElig": "Æ",
	"AMP;": "&", "AMP": "&",
	"Aacute;": "Á", "Aacute": "Á",
	"Agrave;": "À", "Agrave": "À",
	"Alpha;":  "Α",
	"Auml;":   "Ä", "Auml": "Ä",
	"Beta;":   "Β",
	"COPY;":   "©", "COPY": "©",
	"Ccedil;": "Ç", "Ccedil": "Ç",
	"Dagger;": "‡",
	"Delta;":  "Δ",
	"Eacute;": "É", "Eacute": "É",
	"Egrave;": "È", "Egrave": "È",
	"Euml;":   "Ë", "Euml": "Ë",
	"GT;":     ">", "GT": ">",
	"Gamma;":  "Γ",
	"Iacute;": "Í", "Iacute": "Í",
	"Igrave;": "Ì", "Igrave": "Ì",
	"LT;":     "<", "LT": "<",
	"Lambda;": "Λ",
	"Ntilde;": "Ñ", "Ntilde": "Ñ",
	"Oacute;": "Ó", "Oacute": "Ó",
	"Ograve;": "Ò", "Ograve": "Ò",
	"Omega;":  "Ω",
	"Ouml;":   "Ö", "Ouml": "Ö",
	"Phi;":    "Φ",
	"Pi;":     "Π",
	"Prime;":  "″",
	"Psi;":    "Ψ",
	"QUOT;":   "\"", "QUOT": "\"",
	"REG;":    "®", "REG": "®",
	"Sigma;":  "Σ",
	"TRADE;":  "™",
	"Theta;":  "Θ",
	"Uacute;": "Ú", "Uacute": "Ú",
	"Ugrave;": "Ù", "Ugrave": "Ù",
	"Uuml;":   "Ü", "Uuml": "Ü",
	"Xi;":     "Ξ",
	"Yacute;": "Ý", "Yacute": "Ý",
	"aacute;": "á", "aacute": "á",
	"agrave;": "à", "agrave": "à",
	"alpha;":  "α",
	"amp;":    "&", "amp": "&",
	"apos;":   "'",
	"aring;":  "å", "aring": "å",
	"atilde;": "ã", "atilde": "ã",
	"auml;":   "ä", "auml": "ä",
	"bdquo;":  "„",
	"beta;":   "β",
	"bull;":   "•",
	"ccedil;": "ç", "ccedil": "ç",
	"cent;":   "¢", "cent": "¢",
	"chi;":    "χ",
	"copy;":   "©", "copy": "©",
	"curren;": "¤", "curren": "¤",
	"dagger;": "†",
	"darr;":   "↓",
	"deg;":    "°", "deg": "°",
	"delta;":  "δ",
	"divide;": "÷", "divide": "÷",
	"eacute;": "é", "eacute": "é",
	"egrave;": "è", "egrave": "è",
	"emsp;":   " ",
	"ensp;":   " ",
	"epsilon;": "ε",
	"eta;":    "η",
	"eth;":    "ð", "eth": "ð",
	"euml;":   "ë", "euml": "ë",
	"euro;":   "€",
	"frac12;": "½", "frac12": "½",
	"frac14;": "¼", "frac14": "¼",
	"frac34;": "¾", "frac34": "¾",
	"gamma;":  "γ",
	"ge;":     "≥",
	"gt;":     ">", "gt": ">",
	"harr;":   "↔",
	"hellip;": "…",
	"iacute;": "í", "iacute": "í",
	"igrave;": "ì", "igrave": "ì",
	"infin;":  "∞",
	"iota;":   "ι",
	"iquest;": "¿", "iquest": "¿",
	"iuml;":   "ï", "iuml": "ï",
	"kappa;":  "κ",
	"lambda;": "λ",
	"laquo;":  "«", "laquo": "«",
	"larr;":   "←",
	"ldquo;":  "“",
	"le;":     "≤",
	"lsaquo;": "‹",
	"lsquo;":  "‘",
	"lt;":     "<", "lt": "<",
	"mdash;":  "—",
	"micro;":  "µ", "micro": "µ",
	"middot;": "·", "middot": "·",
	"minus;":  "−",
	"mu;":     "μ",
	"nbsp;":   " ", "nbsp": " ",
	"ndash;":  "–",
	"ne;":     "≠",
	"not;":    "¬", "not": "¬",
	"ntilde;": "ñ", "ntilde": "ñ",
	"nu;":     "ν",
	"oacute;": "ó", "oacute": "ó",
	"ograve;": "ò", "ograve": "ò",
	"omega;":  "ω",
	"ordf;":   "ª", "ordf": "ª",
	"ordm;":   "º", "ordm": "º",
	"oslash;": "ø", "oslash": "ø",
	"otilde;": "õ", "otilde": "õ",
	"ouml;":   "ö", "ouml": "ö",
	"para;":   "¶", "para": "¶",
	"permil;": "‰",
	"phi;":    "φ",
	"pi;":     "π",
	"plusmn;": "±", "plusmn": "±",
	"pound;":  "£", "pound": "£",
	"prime;":  "′",
	"psi;":    "ψ",
	"quot;":   "\"", "quot": "\"",
	"raquo;":  "»", "raquo": "»",
	"rarr;":   "→",
	"rdquo;":  "”",
	"reg;":    "®", "reg": "®",
	"rho;":    "ρ",
	"rsaquo;": "›",
	"rsquo;":  "’",
	"sbquo;":  "‚",
	"sect;":   "§", "sect": "§",
	"shy;":    "­", "shy": "­",
	"sigma;":  "σ",
	"squf;":   "▪",
	"sup1;":   "¹", "sup1": "¹",
	"sup2;":   "²", "sup2": "²",
	"sup3;":   "³", "sup3": "³",
	"szlig;":  "ß", "szlig": "ß",
	"tau;":    "τ",
	"theta;":  "θ",
	"thinsp;": " ",
	"thorn;":  "þ", "thorn": "þ",
	"tilde;":  "˜",
	"times;":  "×", "times": "×",
	"trade;":  "™",
	"uacute;": "ú", "uacute": "ú",
	"uarr;":   "↑",
	"ugrave;": "ù", "ugrave": "ù",
	"uml;":    "¨", "uml": "¨",
	"upsilon;": "υ",
	"uuml;":   "ü", "uuml": "ü",
	"xi;":     "ξ",
	"yacute;": "ý", "yacute": "ý",
	"yen;":    "¥", "yen": "¥",
	"yuml;":   "ÿ", "yuml": "ÿ",
	"zeta;":   "ζ",
	"zwj;":    "‍",
	"zwnj;":   "‌",
}

// maxNamedReferenceLength bounds the lookahead of the greedy matcher.
var maxNamedReferenceLength int

func init() {
	for k := range namedReferences {
		if len(k) > maxNamedReferenceLength {
			maxNamedReferenceLength = len(k)
		}
	}
}

// windows1252Remap substitutes the numeric references in the legacy
// control range 0x80-0x9F with the characters historical documents
// meant by them.
var windows1252Remap = map[int]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}
