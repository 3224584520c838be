// Package nikkud spreads Hebrew vowel points from a vocalized reference
// phrase onto a billet phrase that carries the same consonants but is
// unpointed or spells its matres lectionis (vav, yud) differently.
//
// A phrase is tokenized into letter groups: a consonant together with its
// marks and, in merged mode, the run of vav/yud letters that follows it.
// Aligned reference and billet groups are compared by their mater skeleton
// (the vav/yud run after the leading consonant). The skeleton pair selects a
// Reason, and the Reason selects a transfer rule saying which separated
// billet positions receive which reference positions' marks.
//
// Example:
//
//	s, err := nikkud.New("דָּוִד", "דוד")
//	if err != nil {
//		return err
//	}
//	fmt.Println(s.Result()) // דָּוִד
package nikkud
