package analysis

// DefaultLegalTerms returns the built-in legal term dictionary written to the
// dictionary store when none exists
func DefaultLegalTerms() LegalTermDictionary {
	return LegalTermDictionary{
		{Term: "hereinafter", Plain: "from now on"},
		{Term: "aforementioned", Plain: "mentioned earlier"},
		{Term: "pursuant to", Plain: "according to"},
		{Term: "notwithstanding", Plain: "even though"},
		{Term: "hereby", Plain: "by this"},
		{Term: "therein", Plain: "in that"},
		{Term: "forthwith", Plain: "right away"},
		{Term: "whereas", Plain: "because"},
		{Term: "shall", Plain: "will"},
		{Term: "null and void", Plain: "not valid"},
		{Term: "without prejudice", Plain: "without losing rights"},
		{Term: "in witness whereof", Plain: "as proof"},
		{Term: "witnesseth", Plain: "shows"},
		{Term: "in perpetuity", Plain: "forever"},
		{Term: "heretofore", Plain: "before now"},
		{Term: "hereto", Plain: "to this"},
		{Term: "herewith", Plain: "with this"},
		{Term: "herein", Plain: "in here"},
		{Term: "hereunder", Plain: "below"},
		{Term: "hereunto", Plain: "to this"},
		{Term: "thereunto", Plain: "to that"},
		{Term: "thereby", Plain: "by that"},
		{Term: "thereafter", Plain: "after that"},
		{Term: "thereof", Plain: "of that"},
		{Term: "thereto", Plain: "to that"},
		{Term: "whatsoever", Plain: "at all"},
		{Term: "whomsoever", Plain: "anyone"},
		{Term: "whosoever", Plain: "whoever"},
		{Term: "wherein", Plain: "where"},
		{Term: "whereof", Plain: "of which"},
		{Term: "whereby", Plain: "by which"},
		{Term: "prima facie", Plain: "at first look"},
		{Term: "mutatis mutandis", Plain: "with necessary changes"},
		{Term: "inter alia", Plain: "among other things"},
		{Term: "bona fide", Plain: "genuine"},
		{Term: "status quo", Plain: "current state"},
		{Term: "de facto", Plain: "in fact"},
		{Term: "de jure", Plain: "by law"},
		{Term: "per se", Plain: "by itself"},
		{Term: "viz.", Plain: "namely"},
		{Term: "i.e.", Plain: "that is"},
		{Term: "e.g.", Plain: "for example"},
		{Term: "et al.", Plain: "and others"},
		{Term: "ibid.", Plain: "in the same place"},
		{Term: "supra", Plain: "above"},
		{Term: "infra", Plain: "below"},
		{Term: "ante", Plain: "before"},
		{Term: "post", Plain: "after"},
		{Term: "force majeure", Plain: "unexpected event"},
		{Term: "quantum meruit", Plain: "reasonable payment"},
		{Term: "estoppel", Plain: "can't deny"},
		{Term: "injunction", Plain: "court order"},
		{Term: "tort", Plain: "harm"},
		{Term: "lien", Plain: "legal claim"},
		{Term: "enjoin", Plain: "order"},
		{Term: "stipulate", Plain: "state clearly"},
		{Term: "covenant", Plain: "promise"},
		{Term: "indemnify", Plain: "protect from loss"},
		{Term: "jurisdiction", Plain: "authority"},
		{Term: "consideration", Plain: "payment or exchange"},
		{Term: "waiver", Plain: "giving up rights"},
		{Term: "ipso facto", Plain: "by that fact"},
		{Term: "quid pro quo", Plain: "something for something"},
		{Term: "ultra vires", Plain: "beyond power"},
		{Term: "subject to", Plain: "depending on"},
		{Term: "ab initio", Plain: "from the start"},
		{Term: "in lieu of", Plain: "instead of"},
		{Term: "in re", Plain: "regarding"},
		{Term: "in situ", Plain: "in its original place"},
		{Term: "in toto", Plain: "completely"},
		{Term: "in personam", Plain: "against a person"},
		{Term: "in rem", Plain: "against a thing"},
		{Term: "sui generis", Plain: "unique"},
		{Term: "caveat emptor", Plain: "buyer beware"},
		{Term: "pro rata", Plain: "proportionally"},
		{Term: "sine qua non", Plain: "essential part"},
		{Term: "res ipsa loquitur", Plain: "the thing speaks for itself"},
		{Term: "pro bono", Plain: "for free"},
		{Term: "ex parte", Plain: "from one side only"},
		{Term: "modus operandi", Plain: "way of doing things"},
		{Term: "per curiam", Plain: "by the court"},
		{Term: "sub judice", Plain: "under judgment"},
		{Term: "amicus curiae", Plain: "friend of the court"},
		{Term: "obiter dictum", Plain: "side remark"},
		{Term: "habeas corpus", Plain: "produce the body"},
		{Term: "stare decisis", Plain: "stand by decided cases"},
		{Term: "corpus delicti", Plain: "body of the crime"},
		{Term: "mens rea", Plain: "guilty mind"},
		{Term: "actus reus", Plain: "guilty act"},
		{Term: "mala in se", Plain: "wrong in itself"},
		{Term: "mala prohibita", Plain: "wrong because prohibited"},
		{Term: "subpoena", Plain: "court order"},
		{Term: "affidavit", Plain: "written statement"},
		{Term: "deposition", Plain: "testimony"},
		{Term: "interrogatory", Plain: "written question"},
		{Term: "statute of limitations", Plain: "time limit"},
		{Term: "venue", Plain: "location"},
		{Term: "voir dire", Plain: "jury selection"},
		{Term: "liquidated damages", Plain: "agreed payment for breach"},
		{Term: "specific performance", Plain: "court-ordered fulfillment"},
		{Term: "res judicata", Plain: "already decided"},
	}
}

// phraseReplacements are multi-word legal phrases, matched as plain
// case-insensitive substrings
var phraseReplacements = []replacement{
	{"party of the first part", "the first person"},
	{"party of the second part", "the second person"},
	{"for the avoidance of doubt", "to be clear"},
	{"for all intents and purposes", "in every way"},
	{"in the event that", "if"},
	{"in the absence of", "without"},
	{"at the sole discretion of", "chosen only by"},
	{"in accordance with", "following"},
	{"with reference to", "about"},
	{"with respect to", "about"},
	{"with regard to", "about"},
	{"for the purpose of", "to"},
	{"prior to", "before"},
	{"subsequent to", "after"},
	{"in excess of", "more than"},
	{"in connection with", "related to"},
	{"in relation to", "about"},
	{"in the course of", "during"},
	{"on the basis of", "because of"},
	{"on the grounds that", "because"},
	{"by virtue of", "because of"},
	{"in light of", "because of"},
	{"for the benefit of", "for"},
	{"for and on behalf of", "for"},
	{"from time to time", "sometimes"},
	{"as the case may be", "as needed"},
	{"set forth", "written"},
	{"cease and desist", "stop"},
	{"acknowledged and agreed", "accepted"},
	{"represents and warrants", "promises"},
	{"terms and conditions", "rules"},
	{"bind and inure", "apply"},
	{"force and effect", "power"},
	{"indemnify and hold harmless", "protect"},
	{"due and payable", "owed"},
	{"execute and deliver", "sign"},
	{"assign and transfer", "give"},
	{"rights and remedies", "options"},
	{"right, title and interest", "ownership"},
	{"covenants and agreements", "promises"},
	{"successors and assigns", "future owners"},
}

// kidFriendlyPatterns are regular expressions, applied case-insensitively in order
var kidFriendlyPatterns = []replacement{
	{`\bagree(?:s|d|ment)?\b`, "promise"},
	{`\bcontract(?:s|ual)?\b`, "deal"},
	{`\b(?:shall|must|obligated to)\b`, "need to"},
	{`\bobligations?\b`, "duties"},
	{`\bliable\b`, "responsible"},
	{`\bliability\b`, "responsibility"},
	{`\bexecute\b`, "sign"},
	{`\bterminate\b`, "end"},
	{`\bprovision(?:s)?\b`, "rule"},
	{`\benter into\b`, "make"},
	{`\bcompensation\b`, "payment"},
	{`\bremuneration\b`, "money"},
	{`\bdeemed\b`, "considered"},
	{`\bauthorized\b`, "allowed"},
	{`\bprohibited\b`, "not allowed"},
	{`\bpermitted\b`, "allowed"},
	{`\bcompliance\b`, "following the rules"},
	{`\bviolation\b`, "breaking the rules"},
	{`\bconstitute\b`, "be"},
	{`\bconsideration\b`, "payment"},
	{`\bprocure\b`, "get"},
	{`\butilize\b`, "use"},
	{`\b(?:require|necessitate)(?:s|d)?\b`, "need"},
	{`\bcommence(?:s|d|ment)?\b`, "start"},
	{`\bproceed(?:s|ed|ing)?\b`, "go ahead"},
	{`\bfurnish(?:es|ed)?\b`, "give"},
	{`\bwitness(?:es|ed)?\b`, "see"},
	{`\bascertain\b`, "find out"},
	{`\b(?:advise|notify)(?:s|d|ing)?\b`, "tell"},
	{`\btransmit(?:s|ted)?\b`, "send"},
	{`\bpurchase(?:s|d)?\b`, "buy"},
	{`\btransfer(?:s|red)?\b`, "move"},
	{`\bconvey(?:s|ed|ance)?\b`, "give"},
	{`\brelinquish(?:es|ed)?\b`, "give up"},
	{`\bdocument(?:s|ation)?\b`, "paper"},
	{`\bstatement(?:s)?\b`, "message"},
	{`\brepresent(?:s|ed|ations)?\b`, "say"},
	{`\bwarrant(?:s|ed|y|ies)?\b`, "promise"},
	{`\bendeavor\b`, "try"},
	{`\battempt\b`, "try"},
	{`\bundertake\b`, "try"},
	{`\bfabricate\b`, "make"},
	{`\bconstruct\b`, "build"},
	{`\bmanufacture\b`, "make"},
	{`\bcompel(?:s|led)?\b`, "force"},
	{`\bobligation\b`, "duty"},
	{`\bmandatory\b`, "required"},
	{`\bvoluntary\b`, "optional"},
	{`\bincorporate(?:s|d)?\b`, "include"},
	{`\binherent\b`, "built-in"},
	{`\bhereby\b`, "by this"},
	{`\bthus\b`, "so"},
	{`\bclaim(?:s|ed)?\b`, "ask for"},
	{`\brequest(?:s|ed)?\b`, "ask for"},
	{`\bdemand(?:s|ed)?\b`, "ask for"},
	{`\binvoice(?:s|d)?\b`, "bill"},
	{`\bauthorization\b`, "permission"},
	{`\bconsent\b`, "agreement"},
	{`\bapproval\b`, "okay"},
	{`\bendorsement\b`, "support"},
	{`\bthe undersigned\b`, "I"},
	{`\bsignatory\b`, "person who signs"},
	{`\bcounterparty\b`, "other person"},
	{`\badhere to\b`, "follow"},
	{`\bcomply with\b`, "follow"},
	{`\bcommensurate with\b`, "matching"},
	{`\bdispute(?:s|d)?\b`, "disagreement"},
	{`\bconflict(?:s|ing)?\b`, "disagreement"},
	{`\bregulation(?:s)?\b`, "rule"},
	{`\bamendment(?:s)?\b`, "change"},
	{`\bcommodity\b`, "thing"},
	{`\bperiodically\b`, "sometimes"},
	{`\bsubsequently\b`, "later"},
	{`\bprior to\b`, "before"},
	{`\bhereafter\b`, "from now on"},
	{`\bhereinafter\b`, "from now on"},
	{`\bheretofore\b`, "until now"},
	{`\bthe parties\b`, "the people"},
	{`\baforesaid\b`, "already mentioned"},
	{`\bsupersede(?:s|d)?\b`, "replace"},
	{`\bprecludes?\b`, "prevent"},
	{`\bprohibits?\b`, "not allow"},
	{`\brestricts?\b`, "limit"},
	{`\brequires?\b`, "need"},
	{`\bforthwith\b`, "right away"},
	{`\bexpeditious(?:ly)?\b`, "quickly"},
	{`\bexempt(?:ed|ion)?\b`, "not included"},
	{`\badditional\b`, "extra"},
	{`\bdeficient\b`, "not enough"},
	{`\bexcessive\b`, "too much"},
	{`\binclude, but not limited to\b`, "include"},
	{`\bincluding, without limitation\b`, "including"},
}
